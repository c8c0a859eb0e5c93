package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/itinerary"
	"github.com/pkordes/wanderlist/backend/internal/repo"
)

// csvHeader is the column row written first in every itinerary export.
const csvHeader = "Time,Duration,Location,Topic,Type,Notes"

// ExportService renders a trip's full itinerary as CSV: one section per
// derived day, events in day order, a placeholder row for empty days.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// CSV loads the trip and returns its itinerary as CSV text plus a
// download-safe filename.
func (s *ExportService) CSV(ctx context.Context, tripID uuid.UUID) (filename, data string, err error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", "", fmt.Errorf("service.ExportService.CSV: %w", err)
	}
	return ExportFilename(trip.Name), BuildCSV(trip), nil
}

// BuildCSV renders the trip itinerary. Layout per day: a blank separator
// row, a section header row, then the day's events time-ordered (or a
// single "No events planned" row). Fields containing commas, quotes, or
// newlines are quoted with internal quotes doubled.
func BuildCSV(trip domain.Trip) string {
	days := itinerary.DeriveDays(trip.StartDate, trip.EndDate)
	start, startErr := time.Parse(itinerary.DateLayout, trip.StartDate)

	rows := []string{csvHeader}
	for _, day := range days {
		dateStr := ""
		if startErr == nil {
			// Section headers carry the weekday for print-outs, e.g. "Wed, Jun 4".
			dateStr = start.AddDate(0, 0, day.Index).Format("Mon, Jan 2")
		}

		rows = append(rows, "")
		rows = append(rows, csvEscape(fmt.Sprintf("--- Day %d (%s) ---", day.Index+1, dateStr))+",,,,,")

		events := itinerary.EventsForDay(trip.Events, day.Index)
		if len(events) == 0 {
			rows = append(rows, "No events planned,,,,,")
			continue
		}

		for _, e := range events {
			locName := ""
			if e.Location != nil {
				locName = e.Location.Name
			}
			rows = append(rows, strings.Join([]string{
				csvEscape(formatTimeRange(e.StartTime, e.EndTime)),
				csvEscape(formatDuration(e.StartTime, e.EndTime)),
				csvEscape(locName),
				csvEscape(e.Topic),
				csvEscape(e.Type),
				csvEscape(e.Note),
			}, ","))
		}
	}

	return strings.Join(rows, "\n")
}

// formatTimeRange renders "09:00 - 10:30", a lone start time, or "".
func formatTimeRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}

// formatDuration renders the span between two "HH:MM" values as "1h 30m",
// "2h", or "45m". It is empty unless both times are set and end strictly
// follows start.
func formatDuration(start, end string) string {
	startMin, okS := parseMinutes(start)
	endMin, okE := parseMinutes(end)
	if !okS || !okE {
		return ""
	}
	diff := endMin - startMin
	if diff <= 0 {
		return ""
	}
	hours, minutes := diff/60, diff%60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(ts string) (int, bool) {
	t, err := time.Parse("15:04", ts)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// csvEscape wraps a field in quotes when it contains a comma, quote, or
// newline, doubling any internal quotes.
func csvEscape(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// unsafeFilenameChars matches everything stripped from trip names when
// building the download filename.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// ExportFilename turns a trip name into "<Safe_Name>_itinerary.csv".
func ExportFilename(tripName string) string {
	safe := unsafeFilenameChars.ReplaceAllString(tripName, "")
	safe = strings.Join(strings.Fields(safe), "_")
	if safe == "" {
		safe = "trip"
	}
	return safe + "_itinerary.csv"
}
