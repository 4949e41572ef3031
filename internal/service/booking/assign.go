package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

// AssignStaff returns the first candidate, in the given order, whose busy set
// does not overlap the interval. It does not reserve anything; callers follow
// up with CreateHold and must be ready for ErrConflict.
func (s *Service) AssignStaff(ctx context.Context, iv domain.Interval, candidates []domain.StaffMember) (domain.StaffMember, error) {
	now := s.now()
	for _, c := range candidates {
		appts, err := s.appts.FindBusy(ctx, c.ID, iv, now)
		if err != nil {
			return domain.StaffMember{}, fmt.Errorf("find busy for staff %s: %w", c.ID, err)
		}
		if !domain.OverlapsAny(iv, domain.BusyIntervals(appts, now)) {
			return c, nil
		}
	}
	return domain.StaffMember{}, ErrNoAvailability
}

type BookInput struct {
	TenantID  uuid.UUID
	ServiceID uuid.UUID
	AddonIDs  []uuid.UUID
	// StaffID pins the booking to one staff member. Nil lets the service pick.
	StaffID *uuid.UUID
	Start   time.Time
}

// Book resolves the appointment length and price, picks a staff member when
// none is given, and places a hold. A candidate that loses the hold race is
// dropped and the next one is tried.
func (s *Service) Book(ctx context.Context, in BookInput) (domain.Appointment, error) {
	if in.Start.IsZero() {
		return domain.Appointment{}, validationError("start_time is required")
	}
	if in.Start.Before(s.now()) {
		return domain.Appointment{}, validationError("start_time must not be in the past")
	}

	res, err := s.ResolveDuration(ctx, in.ServiceID, in.AddonIDs)
	if err != nil {
		return domain.Appointment{}, err
	}
	iv, err := domain.IntervalFrom(in.Start, res.Length())
	if err != nil {
		return domain.Appointment{}, validationError(err.Error())
	}

	hold := HoldInput{
		TenantID:        in.TenantID,
		ServiceID:       uuid.NullUUID{UUID: res.Service.ID, Valid: true},
		Interval:        iv,
		TotalPriceCents: res.TotalPriceCents,
	}

	if in.StaffID != nil {
		staff, err := s.catalog.GetStaff(ctx, *in.StaffID)
		if err != nil {
			return domain.Appointment{}, storeErr("staff "+in.StaffID.String(), err)
		}
		if !staff.Active {
			return domain.Appointment{}, fmt.Errorf("staff %s is inactive: %w", staff.ID, ErrNoAvailability)
		}
		ok, err := s.worksOver(ctx, staff.ID, iv)
		if err != nil {
			return domain.Appointment{}, err
		}
		if !ok {
			return domain.Appointment{}, fmt.Errorf("staff %s is not working then: %w", staff.ID, ErrNoAvailability)
		}
		hold.StaffID = staff.ID
		return s.CreateHold(ctx, hold)
	}

	qualified, err := s.catalog.ListQualifiedStaff(ctx, in.ServiceID)
	if err != nil {
		return domain.Appointment{}, err
	}
	candidates := make([]domain.StaffMember, 0, len(qualified))
	for _, m := range qualified {
		ok, err := s.worksOver(ctx, m.ID, iv)
		if err != nil {
			return domain.Appointment{}, err
		}
		if ok {
			candidates = append(candidates, m)
		}
	}

	for len(candidates) > 0 {
		staff, err := s.AssignStaff(ctx, iv, candidates)
		if err != nil {
			return domain.Appointment{}, err
		}
		hold.StaffID = staff.ID
		appt, err := s.CreateHold(ctx, hold)
		if err == nil {
			return appt, nil
		}
		if !errors.Is(err, ErrConflict) {
			return domain.Appointment{}, err
		}
		s.log.Info("assigned staff lost hold race, trying next", slog.String("staff_id", staff.ID.String()))
		candidates = without(candidates, staff.ID)
	}
	return domain.Appointment{}, ErrNoAvailability
}

func (s *Service) worksOver(ctx context.Context, staffID uuid.UUID, iv domain.Interval) (bool, error) {
	window, ok, err := s.workingWindow(ctx, staffID, iv.Start.In(s.cfg.Location))
	if err != nil || !ok {
		return false, err
	}
	return window.Contains(iv), nil
}

func without(staff []domain.StaffMember, id uuid.UUID) []domain.StaffMember {
	out := staff[:0:0]
	for _, m := range staff {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
