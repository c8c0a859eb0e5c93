package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/handler"
)

func TestCreateEvent(t *testing.T) {
	trip := fixtureTrip()
	svc := &mockTripService{
		addEvent: func(_ context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, domain.TripEvent, error) {
			require.Equal(t, trip.ID, tripID)
			assert.Equal(t, "Visit Louvre", event.Topic)
			assert.Equal(t, "Alex", editor)
			event.ID = uuid.NewString()
			event.LastEditedBy = editor
			updated := trip
			updated.Events = []domain.TripEvent{event}
			return updated, event, nil
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	body := `{"topic":"Visit Louvre","type":"sightseeing","startTime":"09:00","dayIndex":0}`
	rec := serve(t, srv, http.MethodPost, "/trips/"+trip.ID.String()+"/events", body,
		map[string]string{"X-Editor-Name": "Alex"})

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[map[string]any](t, rec)
	event := got["event"].(map[string]any)
	assert.NotEmpty(t, event["id"])
	assert.Equal(t, "Alex", event["lastEditedBy"])
	assert.Contains(t, got, "trip")
}

func TestCreateEvent_ValidationError(t *testing.T) {
	svc := &mockTripService{
		addEvent: func(_ context.Context, _ uuid.UUID, _ domain.TripEvent, _ string) (domain.Trip, domain.TripEvent, error) {
			return domain.Trip{}, domain.TripEvent{}, fmt.Errorf("%w: topic is required", domain.ErrValidation)
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodPost, "/trips/"+uuid.NewString()+"/events", `{"dayIndex":0}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateEvent_CarriesPathID(t *testing.T) {
	trip := fixtureTrip()
	eventID := uuid.NewString()
	svc := &mockTripService{
		updateEvent: func(_ context.Context, _ uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, error) {
			assert.Equal(t, eventID, event.ID)
			assert.Equal(t, "Sam", editor)
			return trip, nil
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	body := `{"topic":"Changed","dayIndex":1}`
	rec := serve(t, srv, http.MethodPut, "/trips/"+trip.ID.String()+"/events/"+eventID, body,
		map[string]string{"X-Editor-Name": "Sam"})

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	svc := &mockTripService{
		updateEvent: func(_ context.Context, _ uuid.UUID, _ domain.TripEvent, _ string) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("event: %w", domain.ErrNotFound)
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodPut, "/trips/"+uuid.NewString()+"/events/"+uuid.NewString(),
		`{"topic":"x","dayIndex":0}`, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	got := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "event not found", got.Error.Message)
}

func TestDeleteEvent_ReturnsUpdatedTrip(t *testing.T) {
	trip := fixtureTrip()
	eventID := uuid.NewString()
	svc := &mockTripService{
		deleteEvent: func(_ context.Context, _ uuid.UUID, id string) (domain.Trip, error) {
			require.Equal(t, eventID, id)
			return trip, nil
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodDelete, "/trips/"+trip.ID.String()+"/events/"+eventID, "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, trip.ID.String(), got["id"])
}
