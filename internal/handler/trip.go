package handler

import (
	"net/http"
	"strconv"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// tripResponse is the wire shape of a trip: the aggregate plus derived
// capacity info. The password never leaves the server.
type tripResponse struct {
	domain.Trip
	SlotsRemaining int `json:"slotsRemaining"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{Trip: t, SlotsRemaining: t.SlotsRemaining()}
}

// createTripRequest is the body of POST /trips.
type createTripRequest struct {
	Name       string            `json:"name"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Password   string            `json:"password"`
	MainCities []domain.Location `json:"mainCities"`
}

// updateTripRequest is the body of PUT /trips/{id}.
type updateTripRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Name:         body.Name,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		PasswordHash: body.Password,
		MainCities:   body.MainCities,
	})
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTripResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = toTripResponse(t)
	}

	writeJSON(w, http.StatusOK, struct {
		Data       []tripResponse `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}{
		Data: data,
		Pagination: struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		}{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTrip handles GET /trips/{id}. This is also the share-link round-trip
// target: the tripId carried in a share URL resolves here.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body updateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.Update(r.Context(), id, body.Name, body.StartDate, body.EndDate)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter, returning nil when absent or
// malformed so pagination defaults apply.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
