package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

// Transition is a compare-and-set status change. When LiveAt is set the
// appointment must also be a hold that has not lapsed at that instant.
type Transition struct {
	ID     uuid.UUID
	From   domain.Status
	To     domain.Status
	LiveAt *time.Time
}

type AppointmentRepository interface {
	// FindBusy returns the confirmed appointments and the holds still live at now
	// for staffID that overlap window, ordered by start time.
	FindBusy(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error)

	// InsertHold stores appt as a hold. It returns ErrConflict when the store's
	// exclusion mechanism rejects the row because it overlaps another hold or
	// confirmed appointment for the same staff member.
	InsertHold(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error)

	// UpdateStatus applies t and returns the updated appointment. It returns
	// ErrNotFound for unknown ids and ErrInvalidState when the current status
	// is not t.From, t.From cannot move to t.To, or the LiveAt guard fails.
	UpdateStatus(ctx context.Context, t Transition) (domain.Appointment, error)

	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)

	// ExpireHolds moves every hold lapsed at now to expired and returns them.
	ExpireHolds(ctx context.Context, now time.Time) ([]domain.Appointment, error)
}
