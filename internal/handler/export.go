package handler

import (
	"net/http"
	"strconv"
)

// ExportCSV handles GET /trips/{tripID}/export: the itinerary as a CSV
// attachment, one section per day.
func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	filename, data, err := s.export.CSV(r.Context(), id)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(data))
}
