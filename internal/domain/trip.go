// Package domain contains the core data types for the WanderList application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, itinerary, mapproj, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCollaborators is the hard cap on participants per trip.
// Admission is checked against Trip.MaxCollaborators, which is always set to
// this value on create; the field exists so persisted trips carry the limit
// they were created under.
const MaxCollaborators = 10

// Preset event categories offered by the UI. TripEvent.Type is a plain
// string so collaborators can also enter free-form categories.
const (
	EventFood      = "Food"
	EventPark      = "Park"
	EventMuseum    = "Museum"
	EventTransport = "Transport"
	EventHotel     = "Hotel"
	EventShopping  = "Shopping"
	EventCustom    = "Custom"
)

// Location is a named geographic point: a city or a place of interest.
// Two locations are the same iff their names match; coordinates play no part
// in membership checks.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// TripEvent is a single itinerary entry bound to exactly one day of a trip.
// StartTime and EndTime are zero-padded "HH:MM" strings (empty = unset),
// which makes lexicographic ordering equal to chronological ordering.
type TripEvent struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	Type         string    `json:"type"`
	Note         string    `json:"note"`
	StartTime    string    `json:"startTime,omitempty"`
	EndTime      string    `json:"endTime,omitempty"`
	Location     *Location `json:"location,omitempty"`
	LastEditedBy string    `json:"lastEditedBy"`
	DayIndex     int       `json:"dayIndex"`
}

// Trip is the top-level shared planning document: the sole unit of
// persistence and the sole mutation boundary. All derived views (day
// calendar, active city, map projection) are recomputed from it on demand
// and own no state of their own.
//
// StartDate and EndDate are "2006-01-02" strings. They are not validated on
// write; consumers that derive the day axis define their own fallbacks.
// DayCityMap maps a day index to the name of the city that day focuses on;
// a missing key falls back to MainCities[0].
//
// PasswordHash holds the shared join secret. Despite the name it is a
// plaintext string compared byte-for-byte; the trip password is an access
// convenience, not an authentication scheme.
type Trip struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	MainCities       []Location     `json:"mainCities"`
	DayCityMap       map[int]string `json:"dayCityMap"`
	PasswordHash     string         `json:"-"`
	Events           []TripEvent    `json:"events"`
	Collaborators    []string       `json:"collaborators"`
	MaxCollaborators int            `json:"maxCollaborators"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// SlotsRemaining reports how many more collaborators the trip can admit.
func (t Trip) SlotsRemaining() int {
	n := t.MaxCollaborators - len(t.Collaborators)
	if n < 0 {
		return 0
	}
	return n
}

// HasCollaborator reports whether name is already admitted.
// Matching is exact: case-sensitive, no trimming.
func (t Trip) HasCollaborator(name string) bool {
	for _, c := range t.Collaborators {
		if c == name {
			return true
		}
	}
	return false
}
