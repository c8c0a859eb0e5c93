// Package service contains the business logic for the WanderList API.
// Services validate inputs, enforce the collaboration rules, apply pure
// aggregate mutations, and orchestrate repo calls. No SQL lives here —
// services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlist/backend/internal/domain"
	"github.com/pkordes/wanderlist/backend/internal/itinerary"
	"github.com/pkordes/wanderlist/backend/internal/repo"
)

// defaultTripName is used when a trip is created with a blank name.
const defaultTripName = "Our Adventure"

// TripService implements the aggregate mutator: every operation loads the
// trip, applies a pure transformation, and persists the whole aggregate.
// Overlapping editors are last-write-wins; the service adds no locking.
type TripService struct {
	repo    repo.TripRepo
	baseURL string
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// baseURL is the public origin used to build share links.
func NewTripService(r repo.TripRepo, baseURL string) *TripService {
	return &TripService{repo: r, baseURL: strings.TrimRight(baseURL, "/")}
}

// Create validates and persists a new trip.
// A blank name falls back to a default; the collaborator cap is always
// pinned to domain.MaxCollaborators regardless of what the caller sent.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.PasswordHash) == "" {
		return domain.Trip{}, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if err := validateDates(trip.StartDate, trip.EndDate); err != nil {
		return domain.Trip{}, err
	}
	if strings.TrimSpace(trip.Name) == "" {
		trip.Name = defaultTripName
	}
	trip.MaxCollaborators = domain.MaxCollaborators
	// City membership is by name everywhere else (AddCity no-ops on
	// duplicates), so the initial list gets the same treatment.
	trip.MainCities = itinerary.DedupCities(trip.MainCities)
	trip.DayCityMap = map[int]string{}
	trip.Events = []domain.TripEvent{}
	trip.Collaborators = []string{}

	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update changes the trip's name and date range, leaving every other field
// untouched.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, name, startDate, endDate string) (domain.Trip, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validateDates(startDate, endDate); err != nil {
		return domain.Trip{}, err
	}
	return s.mutate(ctx, id, "Update", func(trip domain.Trip) (domain.Trip, error) {
		trip.Name = name
		trip.StartDate = startDate
		trip.EndDate = endDate
		return trip, nil
	})
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddEvent validates event, assigns it a fresh ID, stamps the editor, and
// appends it to the trip. The stored event is returned alongside the
// updated trip.
func (s *TripService) AddEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, domain.TripEvent, error) {
	if err := validateEvent(event); err != nil {
		return domain.Trip{}, domain.TripEvent{}, err
	}
	event.ID = uuid.NewString()
	event.LastEditedBy = editor

	trip, err := s.mutate(ctx, tripID, "AddEvent", func(trip domain.Trip) (domain.Trip, error) {
		trip.Events = itinerary.AddEvent(trip.Events, event)
		return trip, nil
	})
	if err != nil {
		return domain.Trip{}, domain.TripEvent{}, err
	}
	return trip, event, nil
}

// UpdateEvent replaces the event matching event.ID, stamping the editor.
// Returns domain.ErrNotFound when the trip has no such event.
func (s *TripService) UpdateEvent(ctx context.Context, tripID uuid.UUID, event domain.TripEvent, editor string) (domain.Trip, error) {
	if err := validateEvent(event); err != nil {
		return domain.Trip{}, err
	}
	event.LastEditedBy = editor

	return s.mutate(ctx, tripID, "UpdateEvent", func(trip domain.Trip) (domain.Trip, error) {
		events, ok := itinerary.UpdateEvent(trip.Events, event)
		if !ok {
			return domain.Trip{}, fmt.Errorf("event: %w", domain.ErrNotFound)
		}
		trip.Events = events
		return trip, nil
	})
}

// DeleteEvent removes the event matching eventID.
// Returns domain.ErrNotFound when the trip has no such event. After a
// successful delete the event is gone from the aggregate; any open edit
// session for it is the client's to close.
func (s *TripService) DeleteEvent(ctx context.Context, tripID uuid.UUID, eventID string) (domain.Trip, error) {
	return s.mutate(ctx, tripID, "DeleteEvent", func(trip domain.Trip) (domain.Trip, error) {
		events, ok := itinerary.RemoveEvent(trip.Events, eventID)
		if !ok {
			return domain.Trip{}, fmt.Errorf("event: %w", domain.ErrNotFound)
		}
		trip.Events = events
		return trip, nil
	})
}

// AddCity appends a city to the trip's main city list.
// Adding a name that is already present is a silent no-op (still persisted,
// so the caller always observes the canonical aggregate).
func (s *TripService) AddCity(ctx context.Context, tripID uuid.UUID, city domain.Location) (domain.Trip, error) {
	if strings.TrimSpace(city.Name) == "" {
		return domain.Trip{}, fmt.Errorf("%w: city name is required", domain.ErrValidation)
	}
	return s.mutate(ctx, tripID, "AddCity", func(trip domain.Trip) (domain.Trip, error) {
		return itinerary.AddCity(trip, city), nil
	})
}

// RemoveCity drops the named city from the trip's main city list.
// Removing an absent name is a silent no-op.
func (s *TripService) RemoveCity(ctx context.Context, tripID uuid.UUID, name string) (domain.Trip, error) {
	return s.mutate(ctx, tripID, "RemoveCity", func(trip domain.Trip) (domain.Trip, error) {
		return itinerary.RemoveCity(trip, name), nil
	})
}

// SetDayCity maps dayIndex to cityName for map focus. The name is not
// required to be in MainCities; the active-city resolver falls back when it
// disappears.
func (s *TripService) SetDayCity(ctx context.Context, tripID uuid.UUID, dayIndex int, cityName string) (domain.Trip, error) {
	if dayIndex < 0 {
		return domain.Trip{}, fmt.Errorf("%w: day index must not be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(cityName) == "" {
		return domain.Trip{}, fmt.Errorf("%w: city name is required", domain.ErrValidation)
	}
	return s.mutate(ctx, tripID, "SetDayCity", func(trip domain.Trip) (domain.Trip, error) {
		return itinerary.SetDayCity(trip, dayIndex, cityName), nil
	})
}

// ChangePassword replaces the trip's shared join secret.
func (s *TripService) ChangePassword(ctx context.Context, tripID uuid.UUID, password string) (domain.Trip, error) {
	if strings.TrimSpace(password) == "" {
		return domain.Trip{}, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return s.mutate(ctx, tripID, "ChangePassword", func(trip domain.Trip) (domain.Trip, error) {
		trip.PasswordHash = password
		return trip, nil
	})
}

// Join admits a participant into the trip's collaborator list.
//
// Rules, in order:
//   - the supplied password must equal the trip's secret exactly
//     (domain.ErrBadPassword otherwise);
//   - a name already on the list is re-admitted without any capacity check
//     or mutation, so rejoining is idempotent;
//   - a new name is rejected with domain.ErrTripFull at capacity, otherwise
//     appended and persisted.
//
// Names match exactly, no case folding or trimming, so "Alex" and "alex"
// occupy two slots.
func (s *TripService) Join(ctx context.Context, tripID uuid.UUID, password, name string) (domain.Trip, error) {
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Join: %w", err)
	}

	if password != trip.PasswordHash {
		return domain.Trip{}, fmt.Errorf("service.TripService.Join: %w", domain.ErrBadPassword)
	}
	if trip.HasCollaborator(name) {
		return trip, nil
	}
	if len(trip.Collaborators) >= trip.MaxCollaborators {
		return domain.Trip{}, fmt.Errorf("service.TripService.Join: %w", domain.ErrTripFull)
	}

	trip.Collaborators = append(append([]string{}, trip.Collaborators...), name)
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Join: %w", err)
	}
	return result, nil
}

// ShareLink builds the public link that reopens this exact trip: the base
// origin with a tripId query parameter. Opening the link reproduces the
// same GetByID lookup.
func (s *TripService) ShareLink(tripID uuid.UUID) string {
	return s.baseURL + "/?tripId=" + url.QueryEscape(tripID.String())
}

// mutate loads the trip, applies fn, and persists the result. All aggregate
// mutators funnel through here so the load-transform-save shape stays in
// one place.
func (s *TripService) mutate(ctx context.Context, tripID uuid.UUID, op string, fn func(domain.Trip) (domain.Trip, error)) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}

	updated, err := fn(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}

	result, err := s.repo.Update(ctx, updated)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return result, nil
}

// validateDates accepts empty dates (the calendar deriver has a documented
// fallback) but rejects non-empty values that are not "2006-01-02", since
// those would silently collapse the trip to a single day.
func validateDates(startDate, endDate string) error {
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(itinerary.DateLayout, d); err != nil {
			return fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", domain.ErrValidation, d)
		}
	}
	return nil
}

// validateEvent enforces the rules common to event create and update.
//   - Topic must be non-empty (whitespace-only topics are rejected).
//   - Times, when set, must be zero-padded "HH:MM" so lexicographic ordering
//     stays chronological.
//   - DayIndex must not be negative. Indices beyond the derived day range
//     are accepted; such events simply never render.
func validateEvent(event domain.TripEvent) error {
	if strings.TrimSpace(event.Topic) == "" {
		return fmt.Errorf("%w: topic is required", domain.ErrValidation)
	}
	if event.DayIndex < 0 {
		return fmt.Errorf("%w: day index must not be negative", domain.ErrValidation)
	}
	for _, ts := range []string{event.StartTime, event.EndTime} {
		if ts == "" {
			continue
		}
		if _, err := time.Parse("15:04", ts); err != nil || len(ts) != 5 {
			return fmt.Errorf("%w: time %q is not in HH:MM form", domain.ErrValidation, ts)
		}
	}
	return nil
}
