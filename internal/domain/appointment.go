package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const DefaultHoldMinutes = 10

type Status string

const (
	StatusHold      Status = "hold"
	StatusConfirmed Status = "confirmed"
	StatusReleased  Status = "released"
	StatusExpired   Status = "expired"
	// StatusCancelled is only written by collaborators outside the booking core.
	StatusCancelled Status = "cancelled"
)

// BlockingStatuses are the statuses that occupy a staff member's time.
var BlockingStatuses = []Status{StatusHold, StatusConfirmed}

var transitions = map[Status][]Status{
	StatusHold: {StatusConfirmed, StatusReleased, StatusExpired},
}

func (s Status) Valid() bool {
	switch s {
	case StatusHold, StatusConfirmed, StatusReleased, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID              uuid.UUID     `bun:"id,pk,type:uuid"`
	TenantID        uuid.UUID     `bun:"tenant_id,notnull,type:uuid"`
	StaffID         uuid.UUID     `bun:"staff_id,notnull,type:uuid"`
	ServiceID       uuid.NullUUID `bun:"service_id,type:uuid"`
	StartTime       time.Time     `bun:"start_time,notnull"`
	EndTime         time.Time     `bun:"end_time,notnull"`
	Status          Status        `bun:"status,notnull"`
	HoldExpiresAt   *time.Time    `bun:"hold_expires_at"`
	TotalPriceCents int64         `bun:"total_price_cents,notnull"`
	CreatedAt       time.Time     `bun:"created_at,notnull"`
	UpdatedAt       time.Time     `bun:"updated_at,notnull"`
}

func (a Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// HoldLapsed reports whether a is a hold whose expiry has passed at now.
// A hold is still live at exactly its expiry instant.
func (a Appointment) HoldLapsed(now time.Time) bool {
	return a.Status == StatusHold && a.HoldExpiresAt != nil && now.After(*a.HoldExpiresAt)
}

// Blocking reports whether a occupies its staff member's time at now.
func (a Appointment) Blocking(now time.Time) bool {
	switch a.Status {
	case StatusConfirmed:
		return true
	case StatusHold:
		return !a.HoldLapsed(now)
	}
	return false
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if a == nil {
		return nil
	}
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

func BusyIntervals(appts []Appointment, now time.Time) []Interval {
	out := make([]Interval, 0, len(appts))
	for _, a := range appts {
		if a.Blocking(now) {
			out = append(out, a.Interval())
		}
	}
	return out
}
