package domain

import (
	"testing"
	"time"
)

func TestTotalMinutes(t *testing.T) {
	svc := Service{DurationMinutes: 45, PriceCents: 4500}
	addons := []Addon{{ExtraDurationMinutes: 15, ExtraPriceCents: 1000}}

	if got := TotalMinutes(svc, addons, DefaultCleanupBufferMinutes); got != 70 {
		t.Fatalf("TotalMinutes = %d, want 70", got)
	}
	if got := TotalMinutes(svc, nil, 0); got != 45 {
		t.Fatalf("TotalMinutes without add-ons or buffer = %d, want 45", got)
	}
	if got := TotalPriceCents(svc, addons); got != 5500 {
		t.Fatalf("TotalPriceCents = %d, want 5500", got)
	}
}

func TestCandidateSlots_LastSlotEndsAtWindowEnd(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	window := Interval{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)}

	slots := CandidateSlots(window, Minutes(70), Minutes(15), nil, time.Time{})
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}

	first := slots[0]
	if !first.Start.Equal(window.Start) {
		t.Fatalf("first slot = %s, want 09:00", first.Start.Format("15:04"))
	}

	// The cursor only visits the 15 minute grid, so 15:45 (ending 16:55) is the
	// last start that fits; 16:00 would end at 17:10.
	last := slots[len(slots)-1]
	wantLast := day.Add(15*time.Hour + 45*time.Minute)
	if !last.Start.Equal(wantLast) {
		t.Fatalf("last slot = %s, want 15:45", last.Start.Format("15:04"))
	}
	if last.End.After(window.End) {
		t.Fatalf("last slot end = %s, after window end", last.End.Format("15:04"))
	}
	for _, s := range slots {
		if !s.Start.Before(day.Add(16 * time.Hour)) {
			t.Fatalf("unexpected slot starting at %s", s.Start.Format("15:04"))
		}
	}
	// 09:00..15:45 in 15 minute steps.
	if len(slots) != 28 {
		t.Fatalf("len(slots) = %d, want 28", len(slots))
	}
}

func TestCandidateSlots_BusyFiltering(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	window := Interval{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)}
	busy := Interval{Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 45*time.Minute)}
	length := Minutes(70)

	free := CandidateSlots(window, length, Minutes(15), nil, time.Time{})
	filtered := CandidateSlots(window, length, Minutes(15), []Interval{busy}, time.Time{})

	kept := make(map[time.Time]bool, len(filtered))
	for _, s := range filtered {
		if s.Overlaps(busy) {
			t.Fatalf("slot %s overlaps busy interval", s.Start.Format("15:04"))
		}
		kept[s.Start] = true
	}
	for _, s := range free {
		if !s.Overlaps(busy) && !kept[s.Start] {
			t.Fatalf("non-overlapping slot %s was removed", s.Start.Format("15:04"))
		}
	}

	// Every start from 09:00 to 10:30 reaches into the busy block.
	if !filtered[0].Start.Equal(day.Add(10*time.Hour + 45*time.Minute)) {
		t.Fatalf("first slot = %s, want 10:45", filtered[0].Start.Format("15:04"))
	}
}

func TestCandidateSlots_EdgeCases(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	window := Interval{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)}

	t.Run("length longer than window", func(t *testing.T) {
		if got := CandidateSlots(window, Minutes(61), Minutes(15), nil, time.Time{}); len(got) != 0 {
			t.Fatalf("len(slots) = %d, want 0", len(got))
		}
	})

	t.Run("length equal to window", func(t *testing.T) {
		got := CandidateSlots(window, Minutes(60), Minutes(15), nil, time.Time{})
		if len(got) != 1 {
			t.Fatalf("len(slots) = %d, want 1", len(got))
		}
	})

	t.Run("non-positive step", func(t *testing.T) {
		if got := CandidateSlots(window, Minutes(15), 0, nil, time.Time{}); got != nil {
			t.Fatalf("slots = %v, want nil", got)
		}
	})

	t.Run("not before skips earlier starts", func(t *testing.T) {
		notBefore := day.Add(9*time.Hour + 31*time.Minute)
		got := CandidateSlots(window, Minutes(15), Minutes(15), nil, notBefore)
		if len(got) != 1 {
			t.Fatalf("len(slots) = %d, want 1", len(got))
		}
		if !got[0].Start.Equal(day.Add(9*time.Hour + 45*time.Minute)) {
			t.Fatalf("slot = %s, want 09:45", got[0].Start.Format("15:04"))
		}
	})
}

func TestCandidateSlots_FiveMinuteGridReachesWindowEnd(t *testing.T) {
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	window := Interval{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)}

	slots := CandidateSlots(window, Minutes(70), Minutes(5), nil, time.Time{})
	last := slots[len(slots)-1]
	if !last.Start.Equal(day.Add(15*time.Hour + 50*time.Minute)) {
		t.Fatalf("last slot = %s, want 15:50", last.Start.Format("15:04"))
	}
	if !last.End.Equal(window.End) {
		t.Fatalf("last slot end = %s, want 17:00", last.End.Format("15:04"))
	}
}
