package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type CatalogRepo struct {
	db *bun.DB
}

func NewCatalogRepo(db *bun.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	var out domain.Service
	err := r.db.NewSelect().
		Model(&out).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Service{}, notFound(err)
	}
	return out, nil
}

func (r *CatalogRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	var rows []domain.Service
	err := r.db.NewSelect().
		Model(&rows).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) GetAddons(ctx context.Context, ids []uuid.UUID) ([]domain.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []domain.Addon
	err := r.db.NewSelect().
		Model(&rows).
		Where("id IN (?)", bun.In(ids)).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) ListAddons(ctx context.Context) ([]domain.Addon, error) {
	var rows []domain.Addon
	err := r.db.NewSelect().
		Model(&rows).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) GetStaff(ctx context.Context, id uuid.UUID) (domain.StaffMember, error) {
	var out domain.StaffMember
	err := r.db.NewSelect().
		Model(&out).
		Where("s.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.StaffMember{}, notFound(err)
	}
	return out, nil
}

func (r *CatalogRepo) ListQualifiedStaff(ctx context.Context, serviceID uuid.UUID) ([]domain.StaffMember, error) {
	var rows []domain.StaffMember
	err := r.db.NewSelect().
		Model(&rows).
		Join("JOIN staff_services AS ss ON ss.staff_id = s.id").
		Where("ss.service_id = ?", serviceID).
		Where("s.active = TRUE").
		OrderExpr("s.created_at ASC, s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) GetWeeklyWindow(ctx context.Context, staffID uuid.UUID, weekday time.Weekday) (domain.WeeklyWindow, bool, error) {
	var out domain.WeeklyWindow
	err := r.db.NewSelect().
		Model(&out).
		Where("staff_id = ?", staffID).
		Where("day_of_week = ?", int(weekday)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WeeklyWindow{}, false, nil
		}
		return domain.WeeklyWindow{}, false, err
	}
	return out, true, nil
}

// Seed upserts the catalog rows in one transaction. Existing rows are kept;
// weekly windows are overwritten.
func (r *CatalogRepo) Seed(ctx context.Context, in store.CatalogSeed) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if len(in.Services) > 0 {
			if _, err := tx.NewInsert().Model(&in.Services).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return err
			}
		}
		if len(in.Addons) > 0 {
			if _, err := tx.NewInsert().Model(&in.Addons).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return err
			}
		}
		if len(in.Staff) > 0 {
			if _, err := tx.NewInsert().Model(&in.Staff).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return err
			}
		}
		if len(in.StaffServices) > 0 {
			if _, err := tx.NewInsert().Model(&in.StaffServices).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
				return err
			}
		}
		if len(in.Windows) > 0 {
			_, err := tx.NewInsert().
				Model(&in.Windows).
				On("CONFLICT (staff_id, day_of_week) DO UPDATE").
				Set("start_minute = EXCLUDED.start_minute").
				Set("end_minute = EXCLUDED.end_minute").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
