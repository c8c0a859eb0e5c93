// Package mapproj projects a Trip aggregate into a renderable map model:
// city anchor markers, day-colored event markers, per-day route polylines,
// and a bounding region for camera fit.
//
// The projection is a pure function of the trip plus two pieces of UI state
// (the active day and the day/full-trip toggle); it is recomputed on every
// request. How anchors and routes are drawn is the client's concern — this
// package only fixes the partitions, orderings, colors, and bounds.
package mapproj

import (
	"slices"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/itinerary"
)

// dayColors is the fixed route/marker palette. Days beyond the palette
// length reuse colors via modulo cycling, so the assignment stays
// deterministic for trips of any length.
var dayColors = []string{
	"#3b82f6", // blue
	"#f97316", // orange
	"#10b981", // emerald
	"#8b5cf6", // violet
	"#ef4444", // red
	"#eab308", // yellow
	"#06b6d4", // cyan
	"#ec4899", // pink
}

// DayColor returns the palette color assigned to a day index.
func DayColor(dayIndex int) string {
	if dayIndex < 0 {
		dayIndex = -dayIndex
	}
	return dayColors[dayIndex%len(dayColors)]
}

// PaletteSize is the number of distinct day colors before cycling repeats.
func PaletteSize() int { return len(dayColors) }

// LatLng is a bare coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CityAnchor marks one main city on the map. IsActive distinguishes the
// city the current day focuses on; the visual weight given to active
// anchors is up to the renderer.
type CityAnchor struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	IsActive bool    `json:"isActive"`
}

// EventMarker marks one located, visible event.
type EventMarker struct {
	EventID   string `json:"eventId"`
	Topic     string `json:"topic"`
	StartTime string `json:"startTime,omitempty"`
	DayIndex  int    `json:"dayIndex"`
	Color     string `json:"color"`
	Point     LatLng `json:"point"`
}

// Route is the time-ordered polyline connecting the located events of a
// single day. Routes exist only for days with at least two visible points.
type Route struct {
	DayIndex int      `json:"dayIndex"`
	Color    string   `json:"color"`
	Points   []LatLng `json:"points"`
}

// Bounds is the geographic region containing every city anchor and every
// visible event point. A zero Bounds is the single-point region at (0,0).
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// extend grows the bounds to include p.
func (b *Bounds) extend(p LatLng) {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
}

// Projection is the full renderable map model for one trip view.
type Projection struct {
	CityAnchors  []CityAnchor  `json:"cityAnchors"`
	EventMarkers []EventMarker `json:"eventMarkers"`
	Routes       []Route       `json:"routes"`
	Bounds       Bounds        `json:"bounds"`
}

// Project builds the map model for a trip. When showAllDays is false only
// events on activeDay are visible; either way, events without a location
// never appear.
func Project(trip domain.Trip, activeDay int, showAllDays bool) Projection {
	activeCity := itinerary.ActiveCity(trip, activeDay)

	p := Projection{
		CityAnchors:  make([]CityAnchor, 0, len(trip.MainCities)),
		EventMarkers: []EventMarker{},
		Routes:       []Route{},
	}

	for _, city := range trip.MainCities {
		p.CityAnchors = append(p.CityAnchors, CityAnchor{
			Name:     city.Name,
			Lat:      city.Lat,
			Lng:      city.Lng,
			IsActive: city.Name == activeCity,
		})
	}

	var visible []domain.TripEvent
	for _, e := range trip.Events {
		if e.Location == nil {
			continue
		}
		if !showAllDays && e.DayIndex != activeDay {
			continue
		}
		visible = append(visible, e)
	}

	for _, e := range visible {
		p.EventMarkers = append(p.EventMarkers, EventMarker{
			EventID:   e.ID,
			Topic:     e.Topic,
			StartTime: e.StartTime,
			DayIndex:  e.DayIndex,
			Color:     DayColor(e.DayIndex),
			Point:     LatLng{Lat: e.Location.Lat, Lng: e.Location.Lng},
		})
	}

	p.Routes = buildRoutes(visible)
	p.Bounds = buildBounds(trip.MainCities, visible)
	return p
}

// buildRoutes groups visible events by day and emits one time-ordered
// polyline per day with at least two points. Untimed events sort last via
// the same sentinel ordering the itinerary view uses. Routes are returned
// in ascending day order so output is deterministic.
func buildRoutes(visible []domain.TripEvent) []Route {
	byDay := make(map[int][]domain.TripEvent)
	for _, e := range visible {
		byDay[e.DayIndex] = append(byDay[e.DayIndex], e)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	slices.Sort(days)

	routes := []Route{}
	for _, day := range days {
		ordered := itinerary.EventsForDay(byDay[day], day)
		if len(ordered) < 2 {
			continue
		}
		points := make([]LatLng, len(ordered))
		for i, e := range ordered {
			points[i] = LatLng{Lat: e.Location.Lat, Lng: e.Location.Lng}
		}
		routes = append(routes, Route{
			DayIndex: day,
			Color:    DayColor(day),
			Points:   points,
		})
	}
	return routes
}

// buildBounds computes the region covering every main city and every
// visible event point. With nothing to cover it degrades to the
// single-point region at (0,0) so camera fit never fails on an empty trip.
func buildBounds(cities []domain.Location, visible []domain.TripEvent) Bounds {
	points := make([]LatLng, 0, len(cities)+len(visible))
	for _, c := range cities {
		points = append(points, LatLng{Lat: c.Lat, Lng: c.Lng})
	}
	for _, e := range visible {
		points = append(points, LatLng{Lat: e.Location.Lat, Lng: e.Location.Lng})
	}
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLng: points[0].Lng, MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		b.extend(p)
	}
	return b
}
