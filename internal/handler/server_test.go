package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/handler"
)

// mockTripService is a hand-written test double for handler.TripServicer.
// Each method is a function field — set only the ones your test needs.
type mockTripService struct {
	create         func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list           func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update         func(ctx context.Context, id uuid.UUID, name, startDate, endDate string) (domain.Trip, error)
	delete         func(ctx context.Context, id uuid.UUID) error
	addEvent       func(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, domain.TripEvent, error)
	updateEvent    func(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, error)
	deleteEvent    func(ctx context.Context, tripID uuid.UUID, eventID string) (domain.Trip, error)
	addCity        func(ctx context.Context, tripID uuid.UUID, city domain.Location) (domain.Trip, error)
	removeCity     func(ctx context.Context, tripID uuid.UUID, name string) (domain.Trip, error)
	setDayCity     func(ctx context.Context, tripID uuid.UUID, dayIndex int, cityName string) (domain.Trip, error)
	changePassword func(ctx context.Context, tripID uuid.UUID, password string) (domain.Trip, error)
	join           func(ctx context.Context, tripID uuid.UUID, password, name string) (domain.Trip, error)
	shareLink      func(tripID uuid.UUID) string
}

func (m *mockTripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, p)
}
func (m *mockTripService) Update(ctx context.Context, id uuid.UUID, name, startDate, endDate string) (domain.Trip, error) {
	return m.update(ctx, id, name, startDate, endDate)
}
func (m *mockTripService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripService) AddEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, domain.TripEvent, error) {
	return m.addEvent(ctx, tripID, event, editor)
}
func (m *mockTripService) UpdateEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, error) {
	return m.updateEvent(ctx, tripID, event, editor)
}
func (m *mockTripService) DeleteEvent(ctx context.Context, tripID uuid.UUID, eventID string) (domain.Trip, error) {
	return m.deleteEvent(ctx, tripID, eventID)
}
func (m *mockTripService) AddCity(ctx context.Context, tripID uuid.UUID, city domain.Location) (domain.Trip, error) {
	return m.addCity(ctx, tripID, city)
}
func (m *mockTripService) RemoveCity(ctx context.Context, tripID uuid.UUID, name string) (domain.Trip, error) {
	return m.removeCity(ctx, tripID, name)
}
func (m *mockTripService) SetDayCity(ctx context.Context, tripID uuid.UUID, dayIndex int, cityName string) (domain.Trip, error) {
	return m.setDayCity(ctx, tripID, dayIndex, cityName)
}
func (m *mockTripService) ChangePassword(ctx context.Context, tripID uuid.UUID, password string) (domain.Trip, error) {
	return m.changePassword(ctx, tripID, password)
}
func (m *mockTripService) Join(ctx context.Context, tripID uuid.UUID, password, name string) (domain.Trip, error) {
	return m.join(ctx, tripID, password, name)
}
func (m *mockTripService) ShareLink(tripID uuid.UUID) string {
	return m.shareLink(tripID)
}

// compile-time check: mockTripService must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripService)(nil)

// mockExportService is a test double for handler.ExportServicer.
type mockExportService struct {
	csv func(ctx context.Context, tripID uuid.UUID) (string, string, error)
}

func (m *mockExportService) CSV(ctx context.Context, tripID uuid.UUID) (string, string, error) {
	return m.csv(ctx, tripID)
}

var _ handler.ExportServicer = (*mockExportService)(nil)

// mockSearch is a test double for places.Client.
type mockSearch struct {
	cities func(ctx context.Context, query string) []domain.Location
	places func(ctx context.Context, query, city string) []domain.Location
}

func (m *mockSearch) SearchCities(ctx context.Context, query string) []domain.Location {
	return m.cities(ctx, query)
}
func (m *mockSearch) SearchPlaces(ctx context.Context, query, city string) []domain.Location {
	return m.places(ctx, query, city)
}

// ---- helpers ---------------------------------------------------------------

const testTileURL = "https://tile.example.com/{z}/{x}/{y}.png"

// serve runs one request through the full route tree and returns the recorder.
func serve(t *testing.T, srv *handler.Server, method, target string, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Routes(nil).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func fixtureTrip() domain.Trip {
	return domain.Trip{
		ID:        uuid.MustParse("6fa1e9b0-0000-4000-8000-000000000001"),
		Name:      "Summer in Europe",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
		MainCities: []domain.Location{
			{Name: "Paris", Lat: 48.8566, Lng: 2.3522},
		},
		DayCityMap:       map[int]string{},
		Events:           []domain.TripEvent{},
		Collaborators:    []string{"Alex"},
		MaxCollaborators: domain.MaxCollaborators,
	}
}
