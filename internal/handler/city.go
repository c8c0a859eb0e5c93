package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// AddCity handles POST /trips/{tripID}/cities. Adding a city whose name is
// already on the trip is a no-op; the response is the unchanged trip.
func (s *Server) AddCity(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body domain.Location
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.AddCity(r.Context(), id, body)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// RemoveCity handles DELETE /trips/{tripID}/cities/{cityName}. City names
// come from geocoder display strings and routinely contain commas and
// spaces, so the path segment is percent-decoded before matching.
func (s *Server) RemoveCity(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "cityName")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	trip, err := s.trips.RemoveCity(r.Context(), id, name)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// ChangePassword handles PUT /trips/{tripID}/password.
func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.ChangePassword(r.Context(), id, body.Password)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}
