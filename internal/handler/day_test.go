package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/handler"
)

func TestListDays(t *testing.T) {
	trip := fixtureTrip() // 2026-06-01 to 2026-06-03
	svc := &mockTripService{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodGet, "/trips/"+trip.ID.String()+"/days", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string][]map[string]any](t, rec)
	days := got["days"]
	require.Len(t, days, 3)
	assert.Equal(t, "Day 1", days[0]["label"])
	assert.Equal(t, "Jun 1", days[0]["date"])
	assert.Equal(t, "Day 3", days[2]["label"])
}

func TestListDayEvents_SortedWithCity(t *testing.T) {
	trip := fixtureTrip()
	trip.DayCityMap = map[int]string{0: "Paris"}
	trip.Events = []domain.TripEvent{
		{ID: "b", Topic: "Lunch", StartTime: "12:00", DayIndex: 0},
		{ID: "a", Topic: "Museum", StartTime: "09:00", DayIndex: 0},
		{ID: "c", Topic: "Other day", StartTime: "09:00", DayIndex: 1},
	}
	svc := &mockTripService{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodGet, "/trips/"+trip.ID.String()+"/days/0/events", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, "Paris", got["city"])
	events := got["events"].([]any)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].(map[string]any)["id"])
	assert.Equal(t, "b", events[1].(map[string]any)["id"])
}

func TestListDayEvents_BadIndex(t *testing.T) {
	srv := handler.NewServer(&mockTripService{}, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodGet, "/trips/"+uuid.NewString()+"/days/first/events", "", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetDayCity(t *testing.T) {
	trip := fixtureTrip()
	svc := &mockTripService{
		setDayCity: func(_ context.Context, _ uuid.UUID, dayIndex int, cityName string) (domain.Trip, error) {
			assert.Equal(t, 2, dayIndex)
			assert.Equal(t, "Rome", cityName)
			return trip, nil
		},
	}
	srv := handler.NewServer(svc, nil, nil, testTileURL)

	rec := serve(t, srv, http.MethodPut, "/trips/"+trip.ID.String()+"/days/2/city", `{"city":"Rome"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
}
