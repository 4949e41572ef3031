// Package memory is a process-local implementation of the catalog and
// appointment repositories. A single mutex plays the role of the database's
// exclusion constraint, so it is only safe for one process.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type Store struct {
	mu sync.Mutex

	services      map[uuid.UUID]domain.Service
	addons        map[uuid.UUID]domain.Addon
	staff         map[uuid.UUID]domain.StaffMember
	qualified     map[uuid.UUID]map[uuid.UUID]struct{}
	windows       map[uuid.UUID]map[time.Weekday]domain.WeeklyWindow
	appointments  map[uuid.UUID]domain.Appointment
	insertedOrder []uuid.UUID
}

func New() *Store {
	return &Store{
		services:     make(map[uuid.UUID]domain.Service),
		addons:       make(map[uuid.UUID]domain.Addon),
		staff:        make(map[uuid.UUID]domain.StaffMember),
		qualified:    make(map[uuid.UUID]map[uuid.UUID]struct{}),
		windows:      make(map[uuid.UUID]map[time.Weekday]domain.WeeklyWindow),
		appointments: make(map[uuid.UUID]domain.Appointment),
	}
}

func (s *Store) PutService(svc domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
}

func (s *Store) PutAddon(a domain.Addon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addons[a.ID] = a
}

// PutStaff stores m and links it to the given services.
func (s *Store) PutStaff(m domain.StaffMember, serviceIDs ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[m.ID] = m
	for _, id := range serviceIDs {
		if s.qualified[id] == nil {
			s.qualified[id] = make(map[uuid.UUID]struct{})
		}
		s.qualified[id][m.ID] = struct{}{}
	}
}

func (s *Store) PutWeeklyWindow(w domain.WeeklyWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.windows[w.StaffID] == nil {
		s.windows[w.StaffID] = make(map[time.Weekday]domain.WeeklyWindow)
	}
	s.windows[w.StaffID][w.DayOfWeek] = w
}

// Seed loads a catalog batch. Unlike the database it overwrites existing rows.
func (s *Store) Seed(ctx context.Context, in store.CatalogSeed) error {
	for _, svc := range in.Services {
		s.PutService(svc)
	}
	for _, a := range in.Addons {
		s.PutAddon(a)
	}
	for _, m := range in.Staff {
		s.PutStaff(m)
	}
	s.mu.Lock()
	for _, link := range in.StaffServices {
		if s.qualified[link.ServiceID] == nil {
			s.qualified[link.ServiceID] = make(map[uuid.UUID]struct{})
		}
		s.qualified[link.ServiceID][link.StaffID] = struct{}{}
	}
	s.mu.Unlock()
	for _, w := range in.Windows {
		s.PutWeeklyWindow(w)
	}
	return nil
}

func (s *Store) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return domain.Service{}, store.ErrNotFound
	}
	return svc, nil
}

func (s *Store) ListServices(ctx context.Context) ([]domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		return createdBefore(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) GetAddons(ctx context.Context, ids []uuid.UUID) ([]domain.Addon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Addon
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := s.addons[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) ListAddons(ctx context.Context) ([]domain.Addon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Addon, 0, len(s.addons))
	for _, a := range s.addons {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return createdBefore(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) GetStaff(ctx context.Context, id uuid.UUID) (domain.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.staff[id]
	if !ok {
		return domain.StaffMember{}, store.ErrNotFound
	}
	return m, nil
}

func (s *Store) ListQualifiedStaff(ctx context.Context, serviceID uuid.UUID) ([]domain.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.StaffMember
	for id := range s.qualified[serviceID] {
		m, ok := s.staff[id]
		if !ok || !m.Active {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return createdBefore(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (s *Store) GetWeeklyWindow(ctx context.Context, staffID uuid.UUID, weekday time.Weekday) (domain.WeeklyWindow, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[staffID][weekday]
	return w, ok, nil
}

func (s *Store) FindBusy(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Appointment
	for _, id := range s.insertedOrder {
		a := s.appointments[id]
		if a.StaffID != staffID || !a.Blocking(now) {
			continue
		}
		if !a.Interval().Overlaps(window) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (s *Store) InsertHold(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked(&appt.StaffID, now)

	if appt.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Appointment{}, err
		}
		appt.ID = id
	}
	if _, exists := s.appointments[appt.ID]; exists {
		return domain.Appointment{}, store.ErrConflict
	}

	// Same predicate as the exclusion constraint: status only, no expiry.
	for _, other := range s.appointments {
		if other.StaffID != appt.StaffID {
			continue
		}
		if !slices.Contains(domain.BlockingStatuses, other.Status) {
			continue
		}
		if other.Interval().Overlaps(appt.Interval()) {
			return domain.Appointment{}, store.ErrConflict
		}
	}

	ts := time.Now().UTC()
	appt.Status = domain.StatusHold
	appt.StartTime = appt.StartTime.UTC()
	appt.EndTime = appt.EndTime.UTC()
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = ts
	}
	if appt.UpdatedAt.IsZero() {
		appt.UpdatedAt = ts
	}
	s.appointments[appt.ID] = appt
	s.insertedOrder = append(s.insertedOrder, appt.ID)
	return appt, nil
}

func (s *Store) UpdateStatus(ctx context.Context, t store.Transition) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[t.ID]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	if a.Status != t.From || !domain.CanTransition(t.From, t.To) {
		return domain.Appointment{}, store.ErrInvalidState
	}
	if t.LiveAt != nil && (a.HoldExpiresAt == nil || a.HoldExpiresAt.Before(*t.LiveAt)) {
		return domain.Appointment{}, store.ErrInvalidState
	}

	a.Status = t.To
	if t.To == domain.StatusConfirmed {
		a.HoldExpiresAt = nil
	}
	a.UpdatedAt = time.Now().UTC()
	s.appointments[t.ID] = a
	return a, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return domain.Appointment{}, store.ErrNotFound
	}
	return a, nil
}

func (s *Store) ExpireHolds(ctx context.Context, now time.Time) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expireLocked(nil, now), nil
}

func (s *Store) expireLocked(staffID *uuid.UUID, now time.Time) []domain.Appointment {
	var out []domain.Appointment
	for _, id := range s.insertedOrder {
		a := s.appointments[id]
		if staffID != nil && a.StaffID != *staffID {
			continue
		}
		if !a.HoldLapsed(now) {
			continue
		}
		a.Status = domain.StatusExpired
		a.UpdatedAt = time.Now().UTC()
		s.appointments[id] = a
		out = append(out, a)
	}
	return out
}

func createdBefore(a, b time.Time, aID, bID uuid.UUID) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return aID.String() < bID.String()
}
