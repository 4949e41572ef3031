package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultSlotIncrementMinutes = 15

type Slot struct {
	StaffID  uuid.UUID
	Interval Interval
}

// CandidateSlots walks a cursor across the working window in step increments and
// returns every [cursor, cursor+length) that ends within the window and overlaps
// none of the busy intervals. Starts before notBefore are skipped unless notBefore
// is zero. Results are in ascending start order.
func CandidateSlots(window Interval, length, step time.Duration, busy []Interval, notBefore time.Time) []Interval {
	if length <= 0 || step <= 0 {
		return nil
	}
	if window.Start.Add(length).After(window.End) {
		return nil
	}

	var out []Interval
	for cursor := window.Start; !cursor.Add(length).After(window.End); cursor = cursor.Add(step) {
		if !notBefore.IsZero() && cursor.Before(notBefore) {
			continue
		}
		candidate := Interval{Start: cursor, End: cursor.Add(length)}
		if OverlapsAny(candidate, busy) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
