package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/itinerary"
)

// ListDays handles GET /trips/{tripID}/days: the derived calendar for the
// trip's date range.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Days []itinerary.Day `json:"days"`
	}{Days: itinerary.DeriveDays(trip.StartDate, trip.EndDate)})
}

// ListDayEvents handles GET /trips/{tripID}/days/{dayIndex}/events: the
// day's events in chronological order, untimed events last.
func (s *Server) ListDayEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	dayIndex, ok := dayIndexParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		DayIndex int                `json:"dayIndex"`
		City     string             `json:"city"`
		Events   []domain.TripEvent `json:"events"`
	}{
		DayIndex: dayIndex,
		City:     itinerary.ActiveCity(trip, dayIndex),
		Events:   itinerary.EventsForDay(trip.Events, dayIndex),
	})
}

// SetDayCity handles PUT /trips/{tripID}/days/{dayIndex}/city.
func (s *Server) SetDayCity(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	dayIndex, ok := dayIndexParam(w, r)
	if !ok {
		return
	}

	var body struct {
		City string `json:"city"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.SetDayCity(r.Context(), id, dayIndex, body.City)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// dayIndexParam parses the {dayIndex} path segment. Non-numeric or negative
// values get a 422; indices beyond the trip's derived range are allowed.
func dayIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "dayIndex"))
	if err != nil || n < 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "day index must be a non-negative integer")
		return 0, false
	}
	return n, true
}
