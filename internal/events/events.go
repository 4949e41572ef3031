// Package events carries appointment lifecycle events out of the booking core.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

type Type string

const (
	TypeHeld      Type = "appointment.held"
	TypeConfirmed Type = "appointment.confirmed"
	TypeReleased  Type = "appointment.released"
	TypeExpired   Type = "appointment.expired"
)

type Event struct {
	ID            uuid.UUID     `json:"id"`
	Type          Type          `json:"type"`
	AppointmentID uuid.UUID     `json:"appointment_id"`
	TenantID      uuid.UUID     `json:"tenant_id"`
	StaffID       uuid.UUID     `json:"staff_id"`
	Status        domain.Status `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	HoldExpiresAt *time.Time    `json:"hold_expires_at,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

func FromAppointment(t Type, a domain.Appointment, at time.Time) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Event{
		ID:            id,
		Type:          t,
		AppointmentID: a.ID,
		TenantID:      a.TenantID,
		StaffID:       a.StaffID,
		Status:        a.Status,
		StartTime:     a.StartTime.UTC(),
		EndTime:       a.EndTime.UTC(),
		HoldExpiresAt: a.HoldExpiresAt,
		OccurredAt:    at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
