package handler

import "net/http"

// joinRequest is the body of POST /trips/{tripID}/join.
type joinRequest struct {
	Password string `json:"password"`
	Name     string `json:"name"`
}

// JoinTrip handles POST /trips/{tripID}/join: the password gate in front of
// the collaborator list. Rejoining under a name already on the list succeeds
// without consuming a slot.
func (s *Server) JoinTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body joinRequest
	if !decodeBody(w, r, &body) {
		return
	}

	trip, err := s.trips.Join(r.Context(), id, body.Password, body.Name)
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}
