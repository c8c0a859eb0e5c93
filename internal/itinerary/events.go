package itinerary

import (
	"slices"
	"strings"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// timeSentinel sorts after every valid "HH:MM" value ("23:59" at most), so
// events without a start time land at the end of the day.
const timeSentinel = "99:99"

// sortKey returns the lexicographic sort key for an event's start time.
func sortKey(e domain.TripEvent) string {
	if e.StartTime == "" {
		return timeSentinel
	}
	return e.StartTime
}

// EventsForDay returns the events assigned to dayIndex, ordered by start
// time ascending. "HH:MM" strings are zero-padded, so plain string
// comparison is chronological. Untimed events sort after all timed events
// and keep their relative input order — the sort must stay stable or two
// untimed events would reorder nondeterministically between renders.
//
// The input slice is never modified.
func EventsForDay(events []domain.TripEvent, dayIndex int) []domain.TripEvent {
	var out []domain.TripEvent
	for _, e := range events {
		if e.DayIndex == dayIndex {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.TripEvent) int {
		return strings.Compare(sortKey(a), sortKey(b))
	})
	return out
}

// AddEvent returns a new slice with event appended. The caller's slice is
// left untouched so concurrent last-write-wins saves never alias state.
func AddEvent(events []domain.TripEvent, event domain.TripEvent) []domain.TripEvent {
	out := make([]domain.TripEvent, 0, len(events)+1)
	out = append(out, events...)
	return append(out, event)
}

// UpdateEvent returns a new slice with the event matching updated.ID
// replaced in place, preserving the order of all other elements. The second
// return value reports whether a matching event was found.
func UpdateEvent(events []domain.TripEvent, updated domain.TripEvent) ([]domain.TripEvent, bool) {
	out := make([]domain.TripEvent, len(events))
	found := false
	for i, e := range events {
		if e.ID == updated.ID {
			out[i] = updated
			found = true
			continue
		}
		out[i] = e
	}
	return out, found
}

// RemoveEvent returns a new slice with the event matching id filtered out.
// The second return value reports whether a matching event was found.
func RemoveEvent(events []domain.TripEvent, id string) ([]domain.TripEvent, bool) {
	out := make([]domain.TripEvent, 0, len(events))
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
