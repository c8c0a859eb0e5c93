package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// editorHeader names the collaborator making the change. It is advisory
// attribution, not authentication.
const editorHeader = "X-Editor-Name"

// eventRequest is the body of event create and update calls.
type eventRequest struct {
	Topic     string           `json:"topic"`
	Type      string           `json:"type"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Note      string           `json:"note"`
	Location  *domain.Location `json:"location"`
	DayIndex  int              `json:"dayIndex"`
}

func (b eventRequest) toDomain() domain.TripEvent {
	return domain.TripEvent{
		Topic:     b.Topic,
		Type:      b.Type,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Note:      b.Note,
		Location:  b.Location,
		DayIndex:  b.DayIndex,
	}
}

// CreateEvent handles POST /trips/{tripID}/events. The response carries both
// the stored event (with its server-assigned ID) and the updated trip.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body eventRequest
	if !decodeBody(w, r, &body) {
		return
	}

	trip, event, err := s.trips.AddEvent(r.Context(), id, body.toDomain(), r.Header.Get(editorHeader))
	if err != nil {
		writeServiceError(w, "trip", err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Event domain.TripEvent `json:"event"`
		Trip  tripResponse     `json:"trip"`
	}{Event: event, Trip: toTripResponse(trip)})
}

// UpdateEvent handles PUT /trips/{tripID}/events/{eventID}.
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body eventRequest
	if !decodeBody(w, r, &body) {
		return
	}

	event := body.toDomain()
	event.ID = chi.URLParam(r, "eventID")

	trip, err := s.trips.UpdateEvent(r.Context(), id, event, r.Header.Get(editorHeader))
	if err != nil {
		writeServiceError(w, "event", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// DeleteEvent handles DELETE /trips/{tripID}/events/{eventID}. The updated
// trip is returned so clients can refresh without a second fetch.
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.DeleteEvent(r.Context(), id, chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, "event", err)
		return
	}

	writeJSON(w, http.StatusOK, toTripResponse(trip))
}
