package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/itinerary"
)

func cityTrip() domain.Trip {
	return domain.Trip{
		MainCities: []domain.Location{
			{Name: "Paris", Lat: 48.8566, Lng: 2.3522},
			{Name: "Rome", Lat: 41.9028, Lng: 12.4964},
		},
		DayCityMap: map[int]string{1: "Rome"},
	}
}

func TestActiveCity_ExplicitMapping(t *testing.T) {
	assert.Equal(t, "Rome", itinerary.ActiveCity(cityTrip(), 1))
}

func TestActiveCity_FallsBackToFirstMainCity(t *testing.T) {
	assert.Equal(t, "Paris", itinerary.ActiveCity(cityTrip(), 0))
}

func TestActiveCity_NoCitiesAtAll(t *testing.T) {
	trip := domain.Trip{}

	assert.Equal(t, itinerary.GlobalCity, itinerary.ActiveCity(trip, 0))
}

// A mapping that points at a removed city still resolves: the map entry wins
// even when the name is no longer in MainCities.
func TestActiveCity_MappingSurvivesCityRemoval(t *testing.T) {
	trip := itinerary.RemoveCity(cityTrip(), "Rome")

	assert.Equal(t, "Rome", itinerary.ActiveCity(trip, 1))
}

func TestSetDayCity_DoesNotModifyInput(t *testing.T) {
	trip := cityTrip()

	got := itinerary.SetDayCity(trip, 0, "Rome")

	assert.Equal(t, "Rome", got.DayCityMap[0])
	_, ok := trip.DayCityMap[0]
	assert.False(t, ok, "input map must be untouched")
}

func TestSetDayCity_NilMap(t *testing.T) {
	trip := domain.Trip{}

	got := itinerary.SetDayCity(trip, 2, "Paris")

	require.NotNil(t, got.DayCityMap)
	assert.Equal(t, "Paris", got.DayCityMap[2])
}

func TestAddCity_Appends(t *testing.T) {
	got := itinerary.AddCity(cityTrip(), domain.Location{Name: "Berlin", Lat: 52.52, Lng: 13.405})

	require.Len(t, got.MainCities, 3)
	assert.Equal(t, "Berlin", got.MainCities[2].Name)
}

func TestAddCity_DuplicateNameKeepsOriginal(t *testing.T) {
	got := itinerary.AddCity(cityTrip(), domain.Location{Name: "Paris", Lat: 0, Lng: 0})

	require.Len(t, got.MainCities, 2)
	assert.Equal(t, 48.8566, got.MainCities[0].Lat)
}

func TestAddCity_DoesNotAliasInput(t *testing.T) {
	trip := cityTrip()

	_ = itinerary.AddCity(trip, domain.Location{Name: "Berlin"})

	assert.Len(t, trip.MainCities, 2)
}

func TestDedupCities_FirstOccurrenceWins(t *testing.T) {
	got := itinerary.DedupCities([]domain.Location{
		{Name: "Paris", Lat: 48.8566, Lng: 2.3522},
		{Name: "Rome", Lat: 41.9028, Lng: 12.4964},
		{Name: "Paris"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Paris", got[0].Name)
	assert.Equal(t, 48.8566, got[0].Lat)
	assert.Equal(t, "Rome", got[1].Name)
}

func TestDedupCities_NilInput(t *testing.T) {
	got := itinerary.DedupCities(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRemoveCity(t *testing.T) {
	got := itinerary.RemoveCity(cityTrip(), "Paris")

	require.Len(t, got.MainCities, 1)
	assert.Equal(t, "Rome", got.MainCities[0].Name)
}

func TestRemoveCity_AbsentName(t *testing.T) {
	got := itinerary.RemoveCity(cityTrip(), "Atlantis")

	assert.Len(t, got.MainCities, 2)
}
