package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Service struct {
	bun.BaseModel `bun:"table:services"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	Name            string    `bun:"name,notnull"`
	DurationMinutes int       `bun:"duration_minutes,notnull"`
	PriceCents      int64     `bun:"price_cents,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
}

type Addon struct {
	bun.BaseModel `bun:"table:addons"`

	ID                   uuid.UUID `bun:"id,pk,type:uuid"`
	Name                 string    `bun:"name,notnull"`
	ExtraDurationMinutes int       `bun:"extra_duration_minutes,notnull"`
	ExtraPriceCents      int64     `bun:"extra_price_cents,notnull"`
	CreatedAt            time.Time `bun:"created_at,notnull"`
}

type StaffMember struct {
	bun.BaseModel `bun:"table:staff,alias:s"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	Active    bool      `bun:"active,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// StaffService links a staff member to a service they are qualified to perform.
type StaffService struct {
	bun.BaseModel `bun:"table:staff_services"`

	StaffID   uuid.UUID `bun:"staff_id,pk,type:uuid"`
	ServiceID uuid.UUID `bun:"service_id,pk,type:uuid"`
}

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On returns the instant at this wall-clock time on the calendar day of date, in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

// WeeklyWindow is a staff member's working hours for one weekday.
type WeeklyWindow struct {
	bun.BaseModel `bun:"table:staff_availability"`

	ID        uuid.UUID    `bun:"id,pk,type:uuid"`
	StaffID   uuid.UUID    `bun:"staff_id,notnull,type:uuid"`
	DayOfWeek time.Weekday `bun:"day_of_week,notnull"`
	Start     TimeOfDay    `bun:"start_minute,notnull"`
	End       TimeOfDay    `bun:"end_minute,notnull"`
}

// On returns the concrete working interval for the calendar day of date.
func (w WeeklyWindow) On(date time.Time, loc *time.Location) (Interval, error) {
	return NewInterval(w.Start.On(date, loc), w.End.On(date, loc))
}
