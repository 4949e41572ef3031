package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

const (
	noOverlapConstraint = "appointments_no_overlap"

	sqlStateExclusionViolation = "23P01"
	sqlStateUniqueViolation    = "23505"
)

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

func (r *AppointmentRepo) FindBusy(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("staff_id = ?", staffID).
		Where("start_time < ?", window.End.UTC()).
		Where("end_time > ?", window.Start.UTC()).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("status = ?", domain.StatusConfirmed).
				WhereOr("status = ? AND hold_expires_at >= ?", domain.StatusHold, now.UTC())
		}).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) InsertHold(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:              appt.ID,
		TenantID:        appt.TenantID,
		StaffID:         appt.StaffID,
		ServiceID:       appt.ServiceID,
		StartTime:       appt.StartTime.UTC(),
		EndTime:         appt.EndTime.UTC(),
		Status:          domain.StatusHold,
		HoldExpiresAt:   appt.HoldExpiresAt,
		TotalPriceCents: appt.TotalPriceCents,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// The exclusion constraint cannot see hold expiry, so lapsed holds for
		// this staff member must leave the blocking statuses first.
		staffID := appt.StaffID
		if _, err := expireLapsedHolds(ctx, tx, &staffID, now); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
			if isOverlapViolation(err) {
				return store.ErrConflict
			}
			if isUniqueViolation(err) {
				return store.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return m, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, t store.Transition) (domain.Appointment, error) {
	if !domain.CanTransition(t.From, t.To) {
		return domain.Appointment{}, r.missingOrInvalid(ctx, t.ID)
	}

	q := r.db.NewUpdate().
		Model((*domain.Appointment)(nil)).
		Set("status = ?", t.To).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", t.ID).
		Where("status = ?", t.From)
	if t.To == domain.StatusConfirmed {
		q = q.Set("hold_expires_at = NULL")
	}
	if t.LiveAt != nil {
		q = q.Where("hold_expires_at >= ?", t.LiveAt.UTC())
	}

	var out domain.Appointment
	err := q.Returning("*").Scan(ctx, &out)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, err
	}
	return domain.Appointment{}, r.missingOrInvalid(ctx, t.ID)
}

// missingOrInvalid explains a transition that matched no row.
func (r *AppointmentRepo) missingOrInvalid(ctx context.Context, id uuid.UUID) error {
	exists, err := r.db.NewSelect().
		Model((*domain.Appointment)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrInvalidState
}

func (r *AppointmentRepo) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	var out domain.Appointment
	err := r.db.NewSelect().
		Model(&out).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return out, nil
}

func (r *AppointmentRepo) ExpireHolds(ctx context.Context, now time.Time) ([]domain.Appointment, error) {
	return expireLapsedHolds(ctx, r.db, nil, now)
}

func expireLapsedHolds(ctx context.Context, db bun.IDB, staffID *uuid.UUID, now time.Time) ([]domain.Appointment, error) {
	q := db.NewUpdate().
		Model((*domain.Appointment)(nil)).
		Set("status = ?", domain.StatusExpired).
		Set("updated_at = ?", time.Now().UTC()).
		Where("status = ?", domain.StatusHold).
		Where("hold_expires_at < ?", now.UTC())
	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var rows []domain.Appointment
	if _, err := q.Returning("*").Exec(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == sqlStateExclusionViolation &&
		pgErr.ConstraintName == noOverlapConstraint
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
