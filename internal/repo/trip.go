// Package repo contains all database access logic for the VisaFlow API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/visaflow/backend/internal/domain"
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

// activeTripsCap is the fixed maximum number of trips a listing returns.
// Truncation beyond the cap is silent; there is no pagination token.
const activeTripsCap = 100

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, status, and created_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListActiveByUser returns the user's trips with status "active", in the
	// store's natural retrieval order, capped at 100 records.
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Trip, error)

	// Complete unconditionally sets the trip's status to "completed".
	// Completing an already-completed trip is a no-op success.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Complete(ctx context.Context, id uuid.UUID) error

	// Delete removes a trip by ID at any status.
	// Returns domain.ErrNotFound if it does not exist.
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

// Create inserts a new trip row and returns the full persisted record.
// total_days is written as computed by the service — the database never
// recomputes it.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, country, country_code, visa_type, entry_date, exit_date, total_days, extensions_available)
		VALUES (@user_id, @country, @country_code, @visa_type, @entry_date, @exit_date, @total_days, @extensions_available)
		RETURNING id, user_id, country, country_code, visa_type, entry_date, exit_date, total_days, extensions_available, status, created_at`

	args := pgx.NamedArgs{
		"user_id":              trip.UserID,
		"country":              trip.Country,
		"country_code":         trip.CountryCode,
		"visa_type":            trip.VisaType,
		"entry_date":           trip.EntryDate,
		"exit_date":            trip.ExitDate,
		"total_days":           trip.TotalDays,
		"extensions_available": trip.ExtensionsAvailable,
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
	const q = `
		SELECT id, user_id, country, country_code, visa_type, entry_date, exit_date, total_days, extensions_available, status, created_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListActiveByUser returns up to 100 active trips for the given user.
// No ORDER BY: callers get the store's natural retrieval order.
func (r *pgTripRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	const q = `
		SELECT id, user_id, country, country_code, visa_type, entry_date, exit_date, total_days, extensions_available, status, created_at
		FROM trips
		WHERE user_id = @user_id AND status = @status
		LIMIT @cap`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"status":  string(domain.TripActive),
		"cap":     activeTripsCap,
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListActiveByUser: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListActiveByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListActiveByUser: rows: %w", err)
	}

	return trips, nil
}

// Complete forces the status to "completed" regardless of current status.
// A single unconditional set, safe to repeat.
func (r *pgTripRepo) Complete(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE trips SET status = @status WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":     id,
		"status": string(domain.TripCompleted),
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Complete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Complete: %w", domain.ErrNotFound)
	}
	return nil
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

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and DATE conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		entry  pgtype.Date
		exit   pgtype.Date
		status string
	)

	err := s.Scan(&id, &t.UserID, &t.Country, &t.CountryCode, &t.VisaType,
		&entry, &exit, &t.TotalDays, &t.ExtensionsAvailable, &status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.EntryDate = entry.Time
	t.ExitDate = exit.Time
	t.Status = domain.TripStatus(status)

	return t, nil
}
