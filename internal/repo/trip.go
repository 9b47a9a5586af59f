// Package repo contains all database access logic for the PackPal API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mehak-2/packpal-app-be/internal/domain"
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

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by start_date descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListUpcoming returns trips whose end_date is on or after the given day,
	// ordered by start_date ascending. Used by the weather refresh job.
	ListUpcoming(ctx context.Context, day time.Time) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// UpdatePackingList replaces only the packing list of a trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	UpdatePackingList(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error)

	// UpdateWeather replaces only the stored weather snapshot of a trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	UpdateWeather(ctx context.Context, id uuid.UUID, weather *domain.WeatherSnapshot) (domain.Trip, error)

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

const tripColumns = `id, destination, country, start_date, end_date, activities,
	weather, destination_info, packing_list, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, country, start_date, end_date, activities,
			weather, destination_info, packing_list)
		VALUES (@destination, @country, @start_date, @end_date, @activities,
			@weather, @destination_info, @packing_list)
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

// List returns all trips ordered by start_date descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListUpcoming returns trips that have not yet ended as of the given day.
func (r *pgTripRepo) ListUpcoming(ctx context.Context, day time.Time) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips
		WHERE end_date >= @day
		ORDER BY start_date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"day": day})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListUpcoming: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListUpcoming: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination      = @destination,
		    country          = @country,
		    start_date       = @start_date,
		    end_date         = @end_date,
		    activities       = @activities,
		    weather          = @weather,
		    destination_info = @destination_info,
		    packing_list     = @packing_list,
		    updated_at       = now()
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

// UpdatePackingList replaces the packing list column only, leaving the rest of
// the trip untouched.
func (r *pgTripRepo) UpdatePackingList(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET packing_list = @packing_list,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	payload, err := json.Marshal(list)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdatePackingList: marshal: %w", err)
	}

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "packing_list": payload})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdatePackingList: %w", err)
	}
	return result, nil
}

// UpdateWeather replaces the stored weather snapshot column only.
func (r *pgTripRepo) UpdateWeather(ctx context.Context, id uuid.UUID, weather *domain.WeatherSnapshot) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET weather    = @weather,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	payload, err := marshalNullable(weather)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateWeather: marshal: %w", err)
	}

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "weather": payload})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdateWeather: %w", err)
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

// tripArgs builds the named arguments shared by Create and Update, marshalling
// the jsonb columns up front so a marshal failure surfaces before any SQL runs.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	weather, err := marshalNullable(trip.Weather)
	if err != nil {
		return nil, fmt.Errorf("marshal weather: %w", err)
	}
	destInfo, err := marshalNullable(trip.DestinationInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal destination info: %w", err)
	}
	packingList, err := json.Marshal(trip.PackingList.Normalize())
	if err != nil {
		return nil, fmt.Errorf("marshal packing list: %w", err)
	}

	return pgx.NamedArgs{
		"destination":      trip.Destination,
		"country":          trip.Country,
		"start_date":       trip.StartDate,
		"end_date":         trip.EndDate,
		"activities":       trip.Activities,
		"weather":          weather,
		"destination_info": destInfo,
		"packing_list":     packingList,
	}, nil
}

// marshalNullable marshals a pointer for a nullable jsonb column.
// A nil pointer becomes SQL NULL rather than the JSON literal null.
func marshalNullable[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, date, text[], and jsonb conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		weather   []byte
		destInfo  []byte
		packing   []byte
	)

	err := s.Scan(&id, &t.Destination, &t.Country, &startDate, &endDate,
		&t.Activities, &weather, &destInfo, &packing, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time

	if weather != nil {
		t.Weather = &domain.WeatherSnapshot{}
		if err := json.Unmarshal(weather, t.Weather); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal weather: %w", err)
		}
	}
	if destInfo != nil {
		t.DestinationInfo = &domain.DestinationInfo{}
		if err := json.Unmarshal(destInfo, t.DestinationInfo); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal destination info: %w", err)
		}
	}
	if packing != nil {
		if err := json.Unmarshal(packing, &t.PackingList); err != nil {
			return domain.Trip{}, fmt.Errorf("unmarshal packing list: %w", err)
		}
	}

	return t, nil
}

// collectTrips drains a pgx.Rows into a slice.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}
