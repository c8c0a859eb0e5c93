package itinerary

import (
	"maps"
	"slices"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// GlobalCity is the sentinel active city for trips with no cities at all.
const GlobalCity = "Global"

// ActiveCity resolves the city a day is currently focused on:
// the day's explicit DayCityMap entry when present, else the trip's first
// main city, else GlobalCity.
func ActiveCity(trip domain.Trip, dayIndex int) string {
	if name, ok := trip.DayCityMap[dayIndex]; ok {
		return name
	}
	if len(trip.MainCities) > 0 {
		return trip.MainCities[0].Name
	}
	return GlobalCity
}

// SetDayCity returns a copy of trip with dayIndex mapped to cityName.
// The name is deliberately not checked against MainCities: the resolver's
// fallback covers entries whose city is later removed from the list.
func SetDayCity(trip domain.Trip, dayIndex int, cityName string) domain.Trip {
	out := trip
	out.DayCityMap = maps.Clone(trip.DayCityMap)
	if out.DayCityMap == nil {
		out.DayCityMap = make(map[int]string, 1)
	}
	out.DayCityMap[dayIndex] = cityName
	return out
}

// AddCity returns a copy of trip with city appended to the main city list.
// Membership is by name: adding a city whose name is already present is a
// no-op, regardless of coordinates.
func AddCity(trip domain.Trip, city domain.Location) domain.Trip {
	if containsCity(trip.MainCities, city.Name) {
		return trip
	}
	out := trip
	out.MainCities = append(slices.Clone(trip.MainCities), city)
	return out
}

// DedupCities returns cities with later duplicates removed, keeping the
// first occurrence of each name. Same membership rule as AddCity, so a list
// that went through DedupCities behaves identically to one built by repeated
// AddCity calls. Always returns a non-nil slice.
func DedupCities(cities []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(cities))
	for _, c := range cities {
		if !containsCity(out, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// containsCity reports whether the list holds a city with the given name.
func containsCity(cities []domain.Location, name string) bool {
	for _, c := range cities {
		if c.Name == name {
			return true
		}
	}
	return false
}

// RemoveCity returns a copy of trip with the named city dropped from the
// main city list. Removing a name that is not present is a no-op.
// DayCityMap entries pointing at the removed city are left in place;
// ActiveCity falls back for those days.
func RemoveCity(trip domain.Trip, name string) domain.Trip {
	out := trip
	cities := make([]domain.Location, 0, len(trip.MainCities))
	for _, c := range trip.MainCities {
		if c.Name != name {
			cities = append(cities, c)
		}
	}
	out.MainCities = cities
	return out
}
