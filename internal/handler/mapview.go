package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/mapproj"
)

// GetMap handles GET /trips/{tripID}/map.
//
// Query parameters: ?day= selects the active day (default 0) and ?all=true
// switches from single-day to full-trip visibility. Without a configured
// tile layer there is nothing a client could render, so the endpoint reports
// 503 instead of an undrawable projection.
func (s *Server) GetMap(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if s.tileURL == "" {
		writeServiceError(w, "map", domain.ErrMapUnavailable)
		return
	}

	activeDay := 0
	if v := r.URL.Query().Get("day"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "day must be a non-negative integer")
			return
		}
		activeDay = n
	}
	showAllDays := r.URL.Query().Get("all") == "true"

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		TileURL string `json:"tileUrl"`
		mapproj.Projection
	}{TileURL: s.tileURL, Projection: mapproj.Project(trip, activeDay, showAllDays)})
}
