package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/store"
)

type HoldInput struct {
	TenantID        uuid.UUID
	StaffID         uuid.UUID
	ServiceID       uuid.NullUUID
	Interval        domain.Interval
	TotalPriceCents int64
}

// CreateHold reserves the interval for the staff member until now plus the hold
// window. The busy-set pre-check only fails fast; the store's exclusion
// mechanism decides which of several racing holds wins.
func (s *Service) CreateHold(ctx context.Context, in HoldInput) (domain.Appointment, error) {
	if in.StaffID == uuid.Nil {
		return domain.Appointment{}, validationError("staff_id is required")
	}
	if !in.Interval.Start.Before(in.Interval.End) {
		return domain.Appointment{}, validationError("end_time must be after start_time")
	}
	if in.TotalPriceCents < 0 {
		return domain.Appointment{}, validationError("total_price_cents must not be negative")
	}

	now := s.now()
	log := s.log.With(
		slog.String("staff_id", in.StaffID.String()),
		slog.Time("start_time", in.Interval.Start),
	)

	existing, err := s.appts.FindBusy(ctx, in.StaffID, in.Interval, now)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("find busy: %w", err)
	}
	if domain.OverlapsAny(in.Interval, domain.BusyIntervals(existing, now)) {
		log.Info("hold rejected by pre-check")
		return domain.Appointment{}, fmt.Errorf("staff %s: %w", in.StaffID, ErrConflict)
	}

	expires := now.Add(domain.Minutes(s.cfg.HoldMinutes)).UTC()
	appt, err := s.appts.InsertHold(ctx, domain.Appointment{
		TenantID:        in.TenantID,
		StaffID:         in.StaffID,
		ServiceID:       in.ServiceID,
		StartTime:       in.Interval.Start.UTC(),
		EndTime:         in.Interval.End.UTC(),
		Status:          domain.StatusHold,
		HoldExpiresAt:   &expires,
		TotalPriceCents: in.TotalPriceCents,
	}, now)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Info("hold rejected by store")
		}
		return domain.Appointment{}, storeErr("insert hold", err)
	}

	log.Info("hold created", slog.String("appointment_id", appt.ID.String()), slog.Time("hold_expires_at", expires))
	s.publish(ctx, events.TypeHeld, appt)
	return appt, nil
}

// Confirm turns a live hold into a confirmed appointment. A hold confirmed after
// its expiry is moved to expired and ErrExpired is returned.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if id == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	now := s.now()
	appt, err := s.appts.Get(ctx, id)
	if err != nil {
		return domain.Appointment{}, storeErr("appointment", err)
	}

	switch {
	case appt.Status == domain.StatusExpired:
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrExpired)
	case appt.Status.Terminal():
		return domain.Appointment{}, fmt.Errorf("appointment %s is %s: %w", id, appt.Status, ErrInvalidState)
	case appt.HoldLapsed(now):
		s.expire(ctx, appt)
		return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrExpired)
	}

	confirmed, err := s.appts.UpdateStatus(ctx, store.Transition{
		ID:     id,
		From:   domain.StatusHold,
		To:     domain.StatusConfirmed,
		LiveAt: &now,
	})
	if err != nil {
		if !errors.Is(err, store.ErrInvalidState) {
			return domain.Appointment{}, storeErr("confirm", err)
		}
		// Lost a race with a release, a sweep or another confirm.
		current, getErr := s.appts.Get(ctx, id)
		if getErr != nil {
			return domain.Appointment{}, storeErr("appointment", getErr)
		}
		if current.Status == domain.StatusExpired || current.HoldLapsed(now) {
			return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrExpired)
		}
		return domain.Appointment{}, fmt.Errorf("appointment %s is %s: %w", id, current.Status, ErrInvalidState)
	}

	s.log.Info("appointment confirmed", slog.String("appointment_id", id.String()))
	s.publish(ctx, events.TypeConfirmed, confirmed)
	return confirmed, nil
}

// Release gives a hold back. Releasing a hold that is already released or
// expired succeeds and returns it unchanged; a lapsed hold is recorded as
// expired rather than released.
func (s *Service) Release(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if id == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}

	now := s.now()
	// Two passes cover one lost race against a concurrent transition.
	for attempt := 0; attempt < 2; attempt++ {
		appt, err := s.appts.Get(ctx, id)
		if err != nil {
			return domain.Appointment{}, storeErr("appointment", err)
		}

		var to domain.Status
		switch {
		case appt.Status == domain.StatusReleased || appt.Status == domain.StatusExpired:
			return appt, nil
		case appt.Status.Terminal():
			return domain.Appointment{}, fmt.Errorf("appointment %s is %s: %w", id, appt.Status, ErrInvalidState)
		case appt.HoldLapsed(now):
			to = domain.StatusExpired
		default:
			to = domain.StatusReleased
		}

		updated, err := s.appts.UpdateStatus(ctx, store.Transition{ID: id, From: domain.StatusHold, To: to})
		if errors.Is(err, store.ErrInvalidState) {
			continue
		}
		if err != nil {
			return domain.Appointment{}, storeErr("release", err)
		}

		if to == domain.StatusExpired {
			s.publish(ctx, events.TypeExpired, updated)
		} else {
			s.log.Info("hold released", slog.String("appointment_id", id.String()))
			s.publish(ctx, events.TypeReleased, updated)
		}
		return updated, nil
	}
	return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrInvalidState)
}

// ExpireHolds moves every lapsed hold to expired.
func (s *Service) ExpireHolds(ctx context.Context) ([]domain.Appointment, error) {
	expired, err := s.appts.ExpireHolds(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for _, a := range expired {
		s.publish(ctx, events.TypeExpired, a)
	}
	if len(expired) > 0 {
		s.log.Info("holds expired", slog.Int("count", len(expired)))
	}
	return expired, nil
}

func (s *Service) expire(ctx context.Context, appt domain.Appointment) {
	updated, err := s.appts.UpdateStatus(ctx, store.Transition{ID: appt.ID, From: domain.StatusHold, To: domain.StatusExpired})
	if err != nil {
		if !errors.Is(err, store.ErrInvalidState) {
			s.log.Error("expire hold failed", slog.String("appointment_id", appt.ID.String()), slog.Any("err", err))
		}
		return
	}
	s.publish(ctx, events.TypeExpired, updated)
}
