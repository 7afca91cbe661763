// Package service contains the business logic for the VisaFlow API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/visaflow/backend/internal/domain"
	"github.com/pkordes/visaflow/backend/internal/repo"
)

// TripService implements the trip lifecycle: create with a frozen total_days,
// list active, complete, delete.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
//
// total_days is computed here, once, as the whole-day difference between exit
// and entry, and frozen into the record. Exit before entry is not rejected;
// the negative difference is stored as given. UserID is an opaque reference
// and is never checked against the users table.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.UserID) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: user_id is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(trip.Country) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: country is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(trip.CountryCode) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: country_code is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(trip.VisaType) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: visa_type is required", domain.ErrInvalidRequest)
	}
	if trip.ExtensionsAvailable < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w: extensions_available must not be negative", domain.ErrInvalidRequest)
	}

	trip.TotalDays = domain.TotalDays(trip.EntryDate, trip.ExitDate)

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, err
	}
	return created, nil
}

// ListActive returns the user's active trips, capped at 100 by the repo.
// The result is never nil so callers can range and encode it safely.
func (s *TripService) ListActive(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Complete marks a trip completed. The transition is an unconditional set:
// completing an already-completed trip succeeds with no error.
func (s *TripService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Complete(ctx, id)
}

// Delete hard-deletes a trip by ID at any status.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
