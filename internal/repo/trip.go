// Package repo contains all database access logic for the WanderList API.
// The Trip aggregate is persisted as a single row: scalar fields as columns,
// the nested collections (cities, day-city map, events, collaborators) as
// jsonb documents, because the aggregate is the sole unit of persistence and
// is always read and written whole. No business logic lives here — only SQL
// and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for the Trip aggregate.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of trips ordered by created_at descending,
	// plus the total trip count for pagination metadata.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the whole aggregate and returns the updated record.
	// Overlapping writers are last-write-wins by design; there is no version
	// column. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, start_date, end_date, main_cities, day_city_map,
	password_hash, events, collaborators, max_collaborators, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, start_date, end_date, main_cities, day_city_map,
			password_hash, events, collaborators, max_collaborators)
		VALUES (@name, @start_date, @end_date, @main_cities, @day_city_map,
			@password_hash, @events, @collaborators, @max_collaborators)
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips, most recently created first.
func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	return trips, total, nil
}

// Update overwrites every mutable field of the aggregate and returns the
// updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name              = @name,
		    start_date        = @start_date,
		    end_date          = @end_date,
		    main_cities       = @main_cities,
		    day_city_map      = @day_city_map,
		    password_hash     = @password_hash,
		    events            = @events,
		    collaborators     = @collaborators,
		    max_collaborators = @max_collaborators,
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs encodes the aggregate's collection fields as jsonb arguments.
// Nil collections are written as empty documents so loads never see NULL.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	cities, err := jsonArg(trip.MainCities, "[]")
	if err != nil {
		return nil, err
	}
	dayMap, err := jsonArg(trip.DayCityMap, "{}")
	if err != nil {
		return nil, err
	}
	events, err := jsonArg(trip.Events, "[]")
	if err != nil {
		return nil, err
	}
	collabs, err := jsonArg(trip.Collaborators, "[]")
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"name":              trip.Name,
		"start_date":        trip.StartDate,
		"end_date":          trip.EndDate,
		"main_cities":       cities,
		"day_city_map":      dayMap,
		"password_hash":     trip.PasswordHash,
		"events":            events,
		"collaborators":     collabs,
		"max_collaborators": trip.MaxCollaborators,
	}, nil
}

// jsonArg marshals v, substituting empty for nil so jsonb columns never
// round-trip a JSON null.
func jsonArg(v any, empty string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte(empty), nil
	}
	return b, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It decodes the jsonb collection columns and normalizes them to non-nil
// values, so consumers never need nil guards on loaded aggregates.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t       domain.Trip
		id      pgtype.UUID
		cities  []byte
		dayMap  []byte
		events  []byte
		collabs []byte
	)

	err := s.Scan(&id, &t.Name, &t.StartDate, &t.EndDate, &cities, &dayMap,
		&t.PasswordHash, &events, &collabs, &t.MaxCollaborators, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)

	t.MainCities = []domain.Location{}
	if err := json.Unmarshal(cities, &t.MainCities); err != nil {
		return domain.Trip{}, fmt.Errorf("decode main_cities: %w", err)
	}
	t.DayCityMap = map[int]string{}
	if err := json.Unmarshal(dayMap, &t.DayCityMap); err != nil {
		return domain.Trip{}, fmt.Errorf("decode day_city_map: %w", err)
	}
	t.Events = []domain.TripEvent{}
	if err := json.Unmarshal(events, &t.Events); err != nil {
		return domain.Trip{}, fmt.Errorf("decode events: %w", err)
	}
	t.Collaborators = []string{}
	if err := json.Unmarshal(collabs, &t.Collaborators); err != nil {
		return domain.Trip{}, fmt.Errorf("decode collaborators: %w", err)
	}

	if t.MainCities == nil {
		t.MainCities = []domain.Location{}
	}
	if t.Events == nil {
		t.Events = []domain.TripEvent{}
	}
	if t.Collaborators == nil {
		t.Collaborators = []string{}
	}
	if t.DayCityMap == nil {
		t.DayCityMap = map[int]string{}
	}

	return t, nil
}
