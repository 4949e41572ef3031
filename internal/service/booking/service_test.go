package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/events"
	"salonbook/backend/internal/store"
	"salonbook/backend/internal/store/memory"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store   *memory.Store
	svc     *Service
	now     time.Time
	pub     *recordingPublisher
	service domain.Service
	addon   domain.Addon
	anna    domain.StaffMember
	ben     domain.StaffMember
	carl    domain.StaffMember
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: memory.New(),
		now:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		pub:   &recordingPublisher{},
	}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.service = domain.Service{ID: uuid.New(), Name: "Gel Manicure", DurationMinutes: 45, PriceCents: 4500, CreatedAt: created}
	f.addon = domain.Addon{ID: uuid.New(), Name: "Nail Art", ExtraDurationMinutes: 15, ExtraPriceCents: 1000, CreatedAt: created}
	f.anna = domain.StaffMember{ID: uuid.New(), Name: "Anna", Active: true, CreatedAt: created}
	f.ben = domain.StaffMember{ID: uuid.New(), Name: "Ben", Active: true, CreatedAt: created.Add(time.Hour)}
	f.carl = domain.StaffMember{ID: uuid.New(), Name: "Carl", Active: false, CreatedAt: created}

	f.store.PutService(f.service)
	f.store.PutAddon(f.addon)
	for _, m := range []domain.StaffMember{f.ben, f.anna, f.carl} {
		f.store.PutStaff(m, f.service.ID)
		f.store.PutWeeklyWindow(domain.WeeklyWindow{
			ID:        uuid.New(),
			StaffID:   m.ID,
			DayOfWeek: time.Monday,
			Start:     domain.NewTimeOfDay(9, 0),
			End:       domain.NewTimeOfDay(17, 0),
		})
	}

	f.svc = NewService(f.store, f.store, DefaultConfig(),
		WithClock(func() time.Time { return f.now }),
		WithPublisher(f.pub),
	)
	return f
}

func (f *fixture) hold(t *testing.T, staffID uuid.UUID, start time.Time, minutes int) domain.Appointment {
	t.Helper()
	appt, err := f.svc.CreateHold(context.Background(), HoldInput{
		StaffID:  staffID,
		Interval: domain.Interval{Start: start, End: start.Add(domain.Minutes(minutes))},
	})
	if err != nil {
		t.Fatalf("CreateHold() error = %v", err)
	}
	return appt
}

type fakeAppointments struct {
	findBusyFn     func(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error)
	insertHoldFn   func(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error)
	updateStatusFn func(ctx context.Context, t store.Transition) (domain.Appointment, error)
	getFn          func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	expireHoldsFn  func(ctx context.Context, now time.Time) ([]domain.Appointment, error)
}

func (f *fakeAppointments) FindBusy(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error) {
	if f.findBusyFn == nil {
		panic("FindBusy not configured")
	}
	return f.findBusyFn(ctx, staffID, window, now)
}

func (f *fakeAppointments) InsertHold(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error) {
	if f.insertHoldFn == nil {
		panic("InsertHold not configured")
	}
	return f.insertHoldFn(ctx, appt, now)
}

func (f *fakeAppointments) UpdateStatus(ctx context.Context, t store.Transition) (domain.Appointment, error) {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, t)
}

func (f *fakeAppointments) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeAppointments) ExpireHolds(ctx context.Context, now time.Time) ([]domain.Appointment, error) {
	if f.expireHoldsFn == nil {
		panic("ExpireHolds not configured")
	}
	return f.expireHoldsFn(ctx, now)
}

func TestResolveDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.ResolveDuration(ctx, f.service.ID, []uuid.UUID{f.addon.ID, f.addon.ID})
	if err != nil {
		t.Fatalf("ResolveDuration() error = %v", err)
	}
	if res.TotalMinutes != 70 {
		t.Fatalf("TotalMinutes = %d, want 70", res.TotalMinutes)
	}
	if res.TotalPriceCents != 5500 {
		t.Fatalf("TotalPriceCents = %d, want 5500", res.TotalPriceCents)
	}

	res, err = f.svc.ResolveDuration(ctx, f.service.ID, nil)
	if err != nil {
		t.Fatalf("ResolveDuration(no addons) error = %v", err)
	}
	if res.TotalMinutes != 55 {
		t.Fatalf("TotalMinutes = %d, want 55", res.TotalMinutes)
	}

	_, err = f.svc.ResolveDuration(ctx, f.service.ID, []uuid.UUID{f.addon.ID, uuid.New()})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown addon error = %v, want %v", err, ErrNotFound)
	}

	_, err = f.svc.ResolveDuration(ctx, uuid.New(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown service error = %v, want %v", err, ErrNotFound)
	}

	_, err = f.svc.ResolveDuration(ctx, uuid.Nil, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestAvailableSlots_LastSlotEndsWithinWindow(t *testing.T) {
	f := newFixture(t)

	slots, err := f.svc.AvailableSlots(context.Background(), AvailabilityQuery{
		Date:      monday,
		ServiceID: f.service.ID,
		AddonIDs:  []uuid.UUID{f.addon.ID},
		StaffID:   &f.anna.ID,
	})
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if len(slots) != 28 {
		t.Fatalf("slots = %d, want 28", len(slots))
	}
	if !slots[0].Interval.Start.Equal(at(9, 0)) {
		t.Fatalf("first start = %v, want 09:00", slots[0].Interval.Start)
	}
	last := slots[len(slots)-1]
	if !last.Interval.Start.Equal(at(15, 45)) {
		t.Fatalf("last start = %v, want 15:45", last.Interval.Start)
	}
	for _, s := range slots {
		if s.StaffID != f.anna.ID {
			t.Fatalf("slot staff = %s, want %s", s.StaffID, f.anna.ID)
		}
		if s.Interval.End.After(at(17, 0)) {
			t.Fatalf("slot %v ends after 17:00", s.Interval)
		}
		if s.Interval.Duration() != 70*time.Minute {
			t.Fatalf("slot length = %v, want 70m", s.Interval.Duration())
		}
	}
}

func TestAvailableSlots_BusyFiltering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.hold(t, f.anna.ID, at(10, 0), 45)
	if _, err := f.svc.Confirm(ctx, appt.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	slots, err := f.svc.AvailableSlots(ctx, AvailabilityQuery{
		Date:      monday,
		ServiceID: f.service.ID,
		AddonIDs:  []uuid.UUID{f.addon.ID},
		StaffID:   &f.anna.ID,
	})
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}

	busy := domain.Interval{Start: at(10, 0), End: at(10, 45)}
	for _, s := range slots {
		if s.Interval.Overlaps(busy) {
			t.Fatalf("slot %v overlaps busy %v", s.Interval, busy)
		}
	}
	if len(slots) != 21 {
		t.Fatalf("slots = %d, want 21", len(slots))
	}
	if !slots[0].Interval.Start.Equal(at(10, 45)) {
		t.Fatalf("first start = %v, want 10:45", slots[0].Interval.Start)
	}
}

func TestAvailableSlots_StaffSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := AvailabilityQuery{Date: monday, ServiceID: f.service.ID, AddonIDs: []uuid.UUID{f.addon.ID}}

	slots, err := f.svc.AvailableSlots(ctx, base)
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if len(slots) != 56 {
		t.Fatalf("slots = %d, want 56", len(slots))
	}
	if slots[0].StaffID != f.anna.ID || slots[27].StaffID != f.anna.ID || slots[28].StaffID != f.ben.ID {
		t.Fatalf("slots not grouped as [anna..., ben...]")
	}
	if !slots[28].Interval.Start.Equal(at(9, 0)) {
		t.Fatalf("ben first start = %v, want 09:00", slots[28].Interval.Start)
	}

	q := base
	q.StaffID = &f.carl.ID
	slots, err = f.svc.AvailableSlots(ctx, q)
	if err != nil {
		t.Fatalf("inactive staff error = %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("inactive staff slots = %d, want 0", len(slots))
	}

	unknown := uuid.New()
	q.StaffID = &unknown
	if _, err := f.svc.AvailableSlots(ctx, q); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown staff error = %v, want %v", err, ErrNotFound)
	}

	q = base
	q.Date = monday.AddDate(0, 0, -1)
	slots, err = f.svc.AvailableSlots(ctx, q)
	if err != nil {
		t.Fatalf("sunday error = %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("sunday slots = %d, want 0", len(slots))
	}

	q = base
	q.NotBefore = at(15, 0)
	slots, _ = f.svc.AvailableSlots(ctx, q)
	if len(slots) != 8 {
		t.Fatalf("not_before slots = %d, want 8", len(slots))
	}
	if !slots[0].Interval.Start.Equal(at(15, 0)) {
		t.Fatalf("not_before first start = %v, want 15:00", slots[0].Interval.Start)
	}

	if _, err := f.svc.AvailableSlots(ctx, AvailabilityQuery{ServiceID: f.service.ID}); err == nil {
		t.Fatalf("missing date error = nil, want validation error")
	}
}

func TestAvailableSlots_SkipsStartsBeforeNow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.now = at(15, 7)
	q := AvailabilityQuery{Date: monday, ServiceID: f.service.ID, AddonIDs: []uuid.UUID{f.addon.ID}, StaffID: &f.anna.ID}

	slots, err := f.svc.AvailableSlots(ctx, q)
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(slots))
	}
	if !slots[0].Interval.Start.Equal(at(15, 15)) {
		t.Fatalf("first start = %v, want 15:15", slots[0].Interval.Start)
	}

	// An explicit cut-off earlier than now does not bring past slots back.
	q.NotBefore = at(9, 0)
	slots, _ = f.svc.AvailableSlots(ctx, q)
	if len(slots) != 3 {
		t.Fatalf("early not_before slots = %d, want 3", len(slots))
	}

	f.now = at(17, 0)
	slots, _ = f.svc.AvailableSlots(ctx, q)
	if len(slots) != 0 {
		t.Fatalf("after closing slots = %d, want 0", len(slots))
	}
}

func TestBook_RejectsPastStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.now = at(12, 0)

	_, err := f.svc.Book(ctx, BookInput{ServiceID: f.service.ID, Start: at(11, 0)})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Book(past) error = %v, want validation error", err)
	}
	if types := f.pub.types(); len(types) != 0 {
		t.Fatalf("events = %v, want none", types)
	}

	appt, err := f.svc.Book(ctx, BookInput{ServiceID: f.service.ID, Start: at(12, 0)})
	if err != nil {
		t.Fatalf("Book(now) error = %v", err)
	}
	if !appt.StartTime.Equal(at(12, 0)) {
		t.Fatalf("start = %v, want 12:00", appt.StartTime)
	}
}

func TestAvailableSlots_TenantZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	f := newFixture(t)
	f.svc = NewService(f.store, f.store, Config{Location: loc, CleanupBufferMinutes: 10},
		WithClock(func() time.Time { return f.now }),
	)

	slots, err := f.svc.AvailableSlots(context.Background(), AvailabilityQuery{
		Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, loc),
		ServiceID: f.service.ID,
		AddonIDs:  []uuid.UUID{f.addon.ID},
		StaffID:   &f.anna.ID,
	})
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	want := time.Date(2025, 3, 3, 9, 0, 0, 0, loc)
	if len(slots) == 0 || !slots[0].Interval.Start.Equal(want) {
		t.Fatalf("first slot = %v, want %v", slots, want)
	}
	if got := slots[0].Interval.Start.UTC().Hour(); got != 14 {
		t.Fatalf("first slot UTC hour = %d, want 14", got)
	}
}

func TestHold_ExpiryFreesInterval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	t0 := f.now

	first := f.hold(t, f.anna.ID, at(10, 0), 70)
	if first.HoldExpiresAt == nil || !first.HoldExpiresAt.Equal(t0.Add(10*time.Minute)) {
		t.Fatalf("hold_expires_at = %v, want %v", first.HoldExpiresAt, t0.Add(10*time.Minute))
	}

	f.now = t0.Add(5 * time.Minute)
	_, err := f.svc.CreateHold(ctx, HoldInput{StaffID: f.anna.ID, Interval: domain.Interval{Start: at(10, 30), End: at(11, 0)}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("overlapping hold error = %v, want %v", err, ErrConflict)
	}

	f.now = t0.Add(11 * time.Minute)
	f.hold(t, f.anna.ID, at(10, 30), 30)

	if _, err := f.svc.Confirm(ctx, first.ID); !errors.Is(err, ErrExpired) {
		t.Fatalf("late confirm error = %v, want %v", err, ErrExpired)
	}
	got, err := f.svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != domain.StatusExpired {
		t.Fatalf("status = %q, want %q", got.Status, domain.StatusExpired)
	}
}

func TestConfirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	t0 := f.now

	appt := f.hold(t, f.anna.ID, at(10, 0), 70)
	f.now = t0.Add(10 * time.Minute)
	confirmed, err := f.svc.Confirm(ctx, appt.ID)
	if err != nil {
		t.Fatalf("Confirm() at expiry instant error = %v", err)
	}
	if confirmed.Status != domain.StatusConfirmed || confirmed.HoldExpiresAt != nil {
		t.Fatalf("confirmed = %+v, want confirmed with no expiry", confirmed)
	}

	if _, err := f.svc.Confirm(ctx, appt.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("second Confirm() error = %v, want %v", err, ErrInvalidState)
	}
	if _, err := f.svc.Confirm(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown Confirm() error = %v, want %v", err, ErrNotFound)
	}

	released := f.hold(t, f.ben.ID, at(10, 0), 70)
	if _, err := f.svc.Release(ctx, released.ID); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := f.svc.Confirm(ctx, released.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Confirm(released) error = %v, want %v", err, ErrInvalidState)
	}

	// Confirmed appointments stay busy forever.
	f.now = t0.Add(24 * time.Hour)
	_, err = f.svc.CreateHold(ctx, HoldInput{StaffID: f.anna.ID, Interval: domain.Interval{Start: at(10, 0), End: at(10, 15)}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("hold over confirmed error = %v, want %v", err, ErrConflict)
	}
}

func TestConfirm_LostRaceReportsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(-time.Second)
	id := uuid.New()
	calls := 0
	repo := &fakeAppointments{
		getFn: func(ctx context.Context, gotID uuid.UUID) (domain.Appointment, error) {
			calls++
			if calls == 1 {
				live := now.Add(time.Minute)
				return domain.Appointment{ID: id, Status: domain.StatusHold, HoldExpiresAt: &live}, nil
			}
			return domain.Appointment{ID: id, Status: domain.StatusExpired, HoldExpiresAt: &exp}, nil
		},
		updateStatusFn: func(ctx context.Context, tr store.Transition) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrInvalidState
		},
	}
	svc := NewService(memory.New(), repo, DefaultConfig(), WithClock(func() time.Time { return now }))

	if _, err := svc.Confirm(context.Background(), id); !errors.Is(err, ErrExpired) {
		t.Fatalf("Confirm() error = %v, want %v", err, ErrExpired)
	}
}

func TestRelease_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.hold(t, f.anna.ID, at(10, 0), 70)
	for i := 0; i < 2; i++ {
		got, err := f.svc.Release(ctx, appt.ID)
		if err != nil {
			t.Fatalf("Release() #%d error = %v", i+1, err)
		}
		if got.Status != domain.StatusReleased {
			t.Fatalf("Release() #%d status = %q, want %q", i+1, got.Status, domain.StatusReleased)
		}
	}

	// The released interval is free again.
	f.hold(t, f.anna.ID, at(10, 0), 70)

	lapsed := f.hold(t, f.ben.ID, at(10, 0), 70)
	f.now = f.now.Add(11 * time.Minute)
	got, err := f.svc.Release(ctx, lapsed.ID)
	if err != nil {
		t.Fatalf("Release(lapsed) error = %v", err)
	}
	if got.Status != domain.StatusExpired {
		t.Fatalf("Release(lapsed) status = %q, want %q", got.Status, domain.StatusExpired)
	}
	if _, err := f.svc.Release(ctx, lapsed.ID); err != nil {
		t.Fatalf("Release(expired) error = %v", err)
	}

	confirmed := f.hold(t, f.ben.ID, at(13, 0), 70)
	if _, err := f.svc.Confirm(ctx, confirmed.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if _, err := f.svc.Release(ctx, confirmed.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Release(confirmed) error = %v, want %v", err, ErrInvalidState)
	}
	if _, err := f.svc.Release(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Release(unknown) error = %v, want %v", err, ErrNotFound)
	}
}

func TestBook_AutoAssignFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := BookInput{ServiceID: f.service.ID, AddonIDs: []uuid.UUID{f.addon.ID}, Start: at(10, 0)}

	first, err := f.svc.Book(ctx, in)
	if err != nil {
		t.Fatalf("Book() #1 error = %v", err)
	}
	if first.StaffID != f.anna.ID {
		t.Fatalf("Book() #1 staff = %s, want anna", first.StaffID)
	}
	if first.TotalPriceCents != 5500 || !first.EndTime.Equal(at(11, 10)) {
		t.Fatalf("Book() #1 = %+v, want price 5500 ending 11:10", first)
	}
	if !first.ServiceID.Valid || first.ServiceID.UUID != f.service.ID {
		t.Fatalf("Book() #1 service_id = %v, want %s", first.ServiceID, f.service.ID)
	}

	second, err := f.svc.Book(ctx, in)
	if err != nil {
		t.Fatalf("Book() #2 error = %v", err)
	}
	if second.StaffID != f.ben.ID {
		t.Fatalf("Book() #2 staff = %s, want ben", second.StaffID)
	}

	if _, err := f.svc.Book(ctx, in); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("Book() #3 error = %v, want %v", err, ErrNoAvailability)
	}

	late := in
	late.Start = at(16, 0)
	if _, err := f.svc.Book(ctx, late); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("Book() past closing error = %v, want %v", err, ErrNoAvailability)
	}
}

func TestBook_ExplicitStaff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := BookInput{ServiceID: f.service.ID, Start: at(9, 0)}

	in.StaffID = &f.ben.ID
	appt, err := f.svc.Book(ctx, in)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appt.StaffID != f.ben.ID {
		t.Fatalf("staff = %s, want ben", appt.StaffID)
	}
	if _, err := f.svc.Book(ctx, in); !errors.Is(err, ErrConflict) {
		t.Fatalf("Book() same slot error = %v, want %v", err, ErrConflict)
	}

	in.StaffID = &f.carl.ID
	if _, err := f.svc.Book(ctx, in); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("Book(inactive) error = %v, want %v", err, ErrNoAvailability)
	}

	unknown := uuid.New()
	in.StaffID = &unknown
	if _, err := f.svc.Book(ctx, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Book(unknown) error = %v, want %v", err, ErrNotFound)
	}
}

func TestBook_RetriesNextCandidateOnConflict(t *testing.T) {
	f := newFixture(t)
	var tried []uuid.UUID
	repo := &fakeAppointments{
		findBusyFn: func(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error) {
			return nil, nil
		},
		insertHoldFn: func(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error) {
			tried = append(tried, appt.StaffID)
			if appt.StaffID == f.anna.ID {
				return domain.Appointment{}, store.ErrConflict
			}
			appt.ID = uuid.New()
			return appt, nil
		},
	}
	svc := NewService(f.store, repo, DefaultConfig(), WithClock(func() time.Time { return f.now }))

	appt, err := svc.Book(context.Background(), BookInput{ServiceID: f.service.ID, Start: at(10, 0)})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appt.StaffID != f.ben.ID {
		t.Fatalf("staff = %s, want ben", appt.StaffID)
	}
	if len(tried) != 2 || tried[0] != f.anna.ID || tried[1] != f.ben.ID {
		t.Fatalf("tried = %v, want [anna ben]", tried)
	}
}

func TestCreateHold_StoreFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeAppointments{
		findBusyFn: func(ctx context.Context, staffID uuid.UUID, window domain.Interval, now time.Time) ([]domain.Appointment, error) {
			return nil, nil
		},
		insertHoldFn: func(ctx context.Context, appt domain.Appointment, now time.Time) (domain.Appointment, error) {
			return domain.Appointment{}, boom
		},
	}
	svc := NewService(memory.New(), repo, DefaultConfig())

	_, err := svc.CreateHold(context.Background(), HoldInput{
		StaffID:  uuid.New(),
		Interval: domain.Interval{Start: at(10, 0), End: at(11, 0)},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("CreateHold() error = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("storage failure reported as conflict")
	}
}

func TestCreateHold_Validation(t *testing.T) {
	svc := NewService(memory.New(), &fakeAppointments{}, DefaultConfig())
	tests := []struct {
		name string
		in   HoldInput
	}{
		{name: "missing staff", in: HoldInput{Interval: domain.Interval{Start: at(10, 0), End: at(11, 0)}}},
		{name: "empty interval", in: HoldInput{StaffID: uuid.New(), Interval: domain.Interval{Start: at(10, 0), End: at(10, 0)}}},
		{name: "negative price", in: HoldInput{StaffID: uuid.New(), Interval: domain.Interval{Start: at(10, 0), End: at(11, 0)}, TotalPriceCents: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateHold(context.Background(), tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestCreateHold_ConcurrentExactlyOneWins(t *testing.T) {
	f := newFixture(t)

	const attempts = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := at(13, 0).Add(time.Duration(i) * 5 * time.Minute)
			_, err := f.svc.CreateHold(context.Background(), HoldInput{
				StaffID:  f.anna.ID,
				Interval: domain.Interval{Start: start, End: start.Add(70 * time.Minute)},
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Errorf("CreateHold() unexpected error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 || conflicts != attempts-1 {
		t.Fatalf("wins = %d conflicts = %d, want 1 and %d", wins, conflicts, attempts-1)
	}
}

func TestExpireHolds_PublishesEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.hold(t, f.anna.ID, at(10, 0), 70)
	f.hold(t, f.ben.ID, at(10, 0), 70)

	f.now = f.now.Add(11 * time.Minute)
	expired, err := f.svc.ExpireHolds(ctx)
	if err != nil {
		t.Fatalf("ExpireHolds() error = %v", err)
	}
	if len(expired) != 2 {
		t.Fatalf("expired = %d, want 2", len(expired))
	}
	got, _ := f.svc.Get(ctx, a.ID)
	if got.Status != domain.StatusExpired {
		t.Fatalf("status = %q, want %q", got.Status, domain.StatusExpired)
	}

	want := []events.Type{events.TypeHeld, events.TypeHeld, events.TypeExpired, events.TypeExpired}
	types := f.pub.types()
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("events = %v, want %v", types, want)
		}
	}
}

type fakeExpirer struct {
	expireFn func(ctx context.Context) ([]domain.Appointment, error)
}

func (f *fakeExpirer) ExpireHolds(ctx context.Context) ([]domain.Appointment, error) {
	if f.expireFn == nil {
		panic("ExpireHolds not configured")
	}
	return f.expireFn(ctx)
}

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	exp := &fakeExpirer{expireFn: func(ctx context.Context) ([]domain.Appointment, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 3 {
			cancel()
		}
		if calls == 2 {
			return nil, errors.New("transient")
		}
		return nil, nil
	}}

	done := make(chan error, 1)
	go func() {
		done <- NewSweeper(exp, time.Millisecond, discardLogger()).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("sweeper did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if calls < 3 {
		t.Fatalf("calls = %d, want at least 3", calls)
	}
}
