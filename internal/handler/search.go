package handler

import (
	"net/http"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// SearchCities handles GET /search/cities?q=. Lookup failures and an
// unconfigured geocoder both surface as an empty result list, never an
// error; clients treat the response as suggestions only.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	results := s.search.SearchCities(r.Context(), r.URL.Query().Get("q"))
	writeSearchResults(w, results)
}

// SearchPlaces handles GET /search/places?q=&city=. The city parameter
// biases results toward the active city.
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results := s.search.SearchPlaces(r.Context(), q.Get("q"), q.Get("city"))
	writeSearchResults(w, results)
}

func writeSearchResults(w http.ResponseWriter, results []domain.Location) {
	if results == nil {
		results = []domain.Location{}
	}
	writeJSON(w, http.StatusOK, struct {
		Results []domain.Location `json:"results"`
	}{Results: results})
}
