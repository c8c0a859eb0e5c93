// Package handler implements the HTTP handlers for the WanderList API.
// All handlers are methods on Server and are registered in Routes. Methods
// are split into resource-specific files (trip.go, event.go, etc.) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/places"
)

// TripServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, id uuid.UUID, name, startDate, endDate string) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, domain.TripEvent, error)
	UpdateEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, error)
	DeleteEvent(ctx context.Context, tripID uuid.UUID, eventID string) (domain.Trip, error)

	AddCity(ctx context.Context, tripID uuid.UUID, city domain.Location) (domain.Trip, error)
	RemoveCity(ctx context.Context, tripID uuid.UUID, name string) (domain.Trip, error)
	SetDayCity(ctx context.Context, tripID uuid.UUID, dayIndex int, cityName string) (domain.Trip, error)

	ChangePassword(ctx context.Context, tripID uuid.UUID, password string) (domain.Trip, error)
	Join(ctx context.Context, tripID uuid.UUID, password, name string) (domain.Trip, error)
	ShareLink(tripID uuid.UUID) string
}

// ExportServicer defines the CSV export operation the export handler uses.
type ExportServicer interface {
	CSV(ctx context.Context, tripID uuid.UUID) (filename, data string, err error)
}

// Server holds the dependencies shared by all handlers.
// tileURL is the map tile layer handed to clients; when empty the map
// endpoint reports itself unavailable instead of returning a projection no
// client could draw.
type Server struct {
	trips   TripServicer
	export  ExportServicer
	search  places.Client
	tileURL string
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, export ExportServicer, search places.Client, tileURL string) *Server {
	return &Server{trips: trips, export: export, search: search, tileURL: tileURL}
}

// Routes registers every endpoint on a fresh router. searchLimit, when
// non-nil, wraps the /search subtree (per-IP rate limiting; the rest of the
// API is unthrottled).
func (s *Server) Routes(searchLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Get("/days", s.ListDays)
			r.Get("/days/{dayIndex}/events", s.ListDayEvents)
			r.Put("/days/{dayIndex}/city", s.SetDayCity)

			r.Post("/events", s.CreateEvent)
			r.Put("/events/{eventID}", s.UpdateEvent)
			r.Delete("/events/{eventID}", s.DeleteEvent)

			r.Post("/cities", s.AddCity)
			r.Delete("/cities/{cityName}", s.RemoveCity)

			r.Put("/password", s.ChangePassword)
			r.Post("/join", s.JoinTrip)

			r.Get("/map", s.GetMap)
			r.Get("/export", s.ExportCSV)
			r.Get("/share", s.ShareTrip)
		})
	})

	r.Route("/search", func(r chi.Router) {
		if searchLimit != nil {
			r.Use(searchLimit)
		}
		r.Get("/cities", s.SearchCities)
		r.Get("/places", s.SearchPlaces)
	})

	return r
}
