package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

type CatalogRepository interface {
	GetService(ctx context.Context, id uuid.UUID) (domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)

	// GetAddons returns the add-ons that exist among ids. Missing ids are
	// silently omitted; callers decide whether a partial result is acceptable.
	GetAddons(ctx context.Context, ids []uuid.UUID) ([]domain.Addon, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)

	GetStaff(ctx context.Context, id uuid.UUID) (domain.StaffMember, error)

	// ListQualifiedStaff returns active staff linked to the service, ordered by
	// creation time and then id.
	ListQualifiedStaff(ctx context.Context, serviceID uuid.UUID) ([]domain.StaffMember, error)

	GetWeeklyWindow(ctx context.Context, staffID uuid.UUID, weekday time.Weekday) (domain.WeeklyWindow, bool, error)
}

// CatalogSeed is a batch of catalog rows written by Seed.
type CatalogSeed struct {
	Services      []domain.Service
	Addons        []domain.Addon
	Staff         []domain.StaffMember
	StaffServices []domain.StaffService
	Windows       []domain.WeeklyWindow
}
