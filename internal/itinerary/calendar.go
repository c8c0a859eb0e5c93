// Package itinerary implements the derived views over a Trip aggregate: the
// day calendar, per-day event ordering, and active-city resolution, plus the
// pure mutators those views depend on.
//
// Every function here is a pure transformation of domain values. Nothing is
// cached between calls, so views are recomputed from the aggregate on every
// request and can never drift out of sync with it.
package itinerary

import (
	"fmt"
	"time"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// DateLayout is the wire format for trip start/end dates.
const DateLayout = "2006-01-02"

// displayLayout is the short month/day form shown on day tabs, e.g. "Jun 4".
const displayLayout = "Jan 2"

// Day describes one calendar day of a trip: its zero-based index, its
// human label, and its short display date.
type Day struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Date  string `json:"date"`
}

// DeriveDays expands the trip's start and end dates into one descriptor per
// calendar day, inclusive of both endpoints.
//
// The difference is taken as an absolute value, so an inverted range
// (end before start) still yields a positive day count rather than an error:
// a trip edited into a bad range must stay loadable for every collaborator.
// An unparseable or empty start date degrades to a single unlabeled day; an
// unparseable end date degrades to a single-day trip starting at start.
func DeriveDays(startDate, endDate string) []Day {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return []Day{{Index: 0, Label: "Day 1"}}
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		end = start
	}

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	count := int(diff/(24*time.Hour)) + 1

	days := make([]Day, count)
	for i := range days {
		days[i] = Day{
			Index: i,
			Label: fmt.Sprintf("Day %d", i+1),
			Date:  start.AddDate(0, 0, i).Format(displayLayout),
		}
	}
	return days
}

// DayCount returns the number of days the trip spans, with the same
// fallbacks as DeriveDays.
func DayCount(trip domain.Trip) int {
	return len(DeriveDays(trip.StartDate, trip.EndDate))
}
