package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

type AvailabilityQuery struct {
	// Date selects a calendar day in the tenant zone; the time of day is ignored.
	Date      time.Time
	ServiceID uuid.UUID
	AddonIDs  []uuid.UUID
	// StaffID restricts the search to one staff member. Nil searches every
	// active staff member qualified for the service.
	StaffID *uuid.UUID
	// NotBefore drops slots starting before it. Slots starting before the
	// current time are always dropped.
	NotBefore time.Time
}

// AvailableSlots recomputes the bookable slots for the query from the weekly
// windows and the current busy set. Slots are grouped by staff member in stable
// order and ascending by start within each staff member.
func (s *Service) AvailableSlots(ctx context.Context, q AvailabilityQuery) ([]domain.Slot, error) {
	if q.Date.IsZero() {
		return nil, validationError("date is required")
	}

	res, err := s.ResolveDuration(ctx, q.ServiceID, q.AddonIDs)
	if err != nil {
		return nil, err
	}

	candidates, err := s.availabilityCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	now := s.now()
	notBefore := q.NotBefore
	if notBefore.Before(now) {
		notBefore = now
	}
	step := domain.Minutes(s.cfg.SlotIncrementMinutes)
	var out []domain.Slot
	for _, staff := range candidates {
		window, ok, err := s.workingWindow(ctx, staff.ID, q.Date)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		appts, err := s.appts.FindBusy(ctx, staff.ID, window, now)
		if err != nil {
			return nil, fmt.Errorf("find busy for staff %s: %w", staff.ID, err)
		}
		busy := domain.BusyIntervals(appts, now)

		for _, iv := range domain.CandidateSlots(window, res.Length(), step, busy, notBefore) {
			out = append(out, domain.Slot{StaffID: staff.ID, Interval: iv})
		}
	}

	s.log.Debug("availability computed",
		slog.String("service_id", q.ServiceID.String()),
		slog.Int("total_minutes", res.TotalMinutes),
		slog.Int("staff", len(candidates)),
		slog.Int("slots", len(out)),
	)
	return out, nil
}

func (s *Service) availabilityCandidates(ctx context.Context, q AvailabilityQuery) ([]domain.StaffMember, error) {
	if q.StaffID == nil {
		return s.catalog.ListQualifiedStaff(ctx, q.ServiceID)
	}
	staff, err := s.catalog.GetStaff(ctx, *q.StaffID)
	if err != nil {
		return nil, storeErr("staff "+q.StaffID.String(), err)
	}
	if !staff.Active {
		return nil, nil
	}
	return []domain.StaffMember{staff}, nil
}
