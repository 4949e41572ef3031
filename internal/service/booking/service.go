package booking

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/store"
)

type Config struct {
	HoldMinutes          int
	SlotIncrementMinutes int
	// CleanupBufferMinutes of zero disables the buffer.
	CleanupBufferMinutes int
	// Location is the tenant's zone. Weekly windows and calendar dates are
	// interpreted in it.
	Location *time.Location
}

func (c Config) withDefaults() Config {
	if c.HoldMinutes <= 0 {
		c.HoldMinutes = domain.DefaultHoldMinutes
	}
	if c.SlotIncrementMinutes <= 0 {
		c.SlotIncrementMinutes = domain.DefaultSlotIncrementMinutes
	}
	if c.CleanupBufferMinutes < 0 {
		c.CleanupBufferMinutes = domain.DefaultCleanupBufferMinutes
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}

// DefaultConfig returns the stock tunables in UTC.
func DefaultConfig() Config {
	return Config{
		HoldMinutes:          domain.DefaultHoldMinutes,
		SlotIncrementMinutes: domain.DefaultSlotIncrementMinutes,
		CleanupBufferMinutes: domain.DefaultCleanupBufferMinutes,
		Location:             time.UTC,
	}
}

type Service struct {
	catalog   store.CatalogRepository
	appts     store.AppointmentRepository
	cfg       Config
	now       func() time.Time
	publisher events.Publisher
	log       *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(catalog store.CatalogRepository, appts store.AppointmentRepository, cfg Config, opts ...Option) *Service {
	s := &Service{
		catalog:   catalog,
		appts:     appts,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
		publisher: events.Nop{},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.catalog.ListServices(ctx)
}

func (s *Service) ListAddons(ctx context.Context) ([]domain.Addon, error) {
	return s.catalog.ListAddons(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if id == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	a, err := s.appts.Get(ctx, id)
	if err != nil {
		return domain.Appointment{}, storeErr("appointment", err)
	}
	return a, nil
}

// Resolution is a service plus the add-ons that extend it, with the derived
// appointment length and price.
type Resolution struct {
	Service         domain.Service
	Addons          []domain.Addon
	TotalMinutes    int
	TotalPriceCents int64
}

func (r Resolution) Length() time.Duration {
	return domain.Minutes(r.TotalMinutes)
}

// ResolveDuration looks up the service and every add-on. Duplicate add-on ids
// count once; any unknown id fails the whole resolution with ErrNotFound.
func (s *Service) ResolveDuration(ctx context.Context, serviceID uuid.UUID, addonIDs []uuid.UUID) (Resolution, error) {
	if serviceID == uuid.Nil {
		return Resolution{}, validationError("service_id is required")
	}

	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return Resolution{}, storeErr("service "+serviceID.String(), err)
	}

	ids := dedupeIDs(addonIDs)
	var addons []domain.Addon
	if len(ids) > 0 {
		addons, err = s.catalog.GetAddons(ctx, ids)
		if err != nil {
			return Resolution{}, err
		}
		if missing := missingAddon(ids, addons); missing != uuid.Nil {
			return Resolution{}, fmt.Errorf("addon %s: %w", missing, ErrNotFound)
		}
	}

	return Resolution{
		Service:         svc,
		Addons:          addons,
		TotalMinutes:    domain.TotalMinutes(svc, addons, s.cfg.CleanupBufferMinutes),
		TotalPriceCents: domain.TotalPriceCents(svc, addons),
	}, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingAddon(ids []uuid.UUID, found []domain.Addon) uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, a := range found {
		have[a.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return id
		}
	}
	return uuid.Nil
}

// workingWindow returns the staff member's working interval on the calendar
// day of date, taken as written, or false when they do not work that weekday.
func (s *Service) workingWindow(ctx context.Context, staffID uuid.UUID, date time.Time) (domain.Interval, bool, error) {
	loc := s.cfg.Location
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	w, ok, err := s.catalog.GetWeeklyWindow(ctx, staffID, day.Weekday())
	if err != nil || !ok {
		return domain.Interval{}, false, err
	}
	window, err := w.On(day, loc)
	if err != nil {
		// A window whose end is not after its start is treated as not working.
		s.log.Warn("invalid weekly window", slog.String("staff_id", staffID.String()), slog.Any("err", err))
		return domain.Interval{}, false, nil
	}
	return window, true, nil
}

func (s *Service) publish(ctx context.Context, t events.Type, a domain.Appointment) {
	if err := s.publisher.Publish(ctx, events.FromAppointment(t, a, s.now())); err != nil {
		s.log.Warn("event publish failed",
			slog.String("event_type", string(t)),
			slog.String("appointment_id", a.ID.String()),
			slog.Any("err", err),
		)
	}
}
