// Package handler implements the HTTP handlers for the VisaFlow API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (user.go, trip.go, visa.go, ...) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// UserServicer defines the business operations the user handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type UserServicer interface {
	Create(ctx context.Context) (domain.UserSettings, error)
	Get(ctx context.Context, id uuid.UUID) (domain.UserSettings, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UserSettingsPatch) (domain.UserSettings, error)
}

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	ListActive(ctx context.Context, userID string) ([]domain.Trip, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RequirementResolver answers visa-requirement lookups. Resolve is pure, so
// it takes no context.
type RequirementResolver interface {
	Resolve(nationalityCode, destinationCode, travelPurpose string) domain.Resolution
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	users     UserServicer
	trips     TripServicer
	resolver  RequirementResolver
	countries []domain.Country
}

// NewServer constructs the Server with all its dependencies.
func NewServer(users UserServicer, trips TripServicer, resolver RequirementResolver, countries []domain.Country) *Server {
	return &Server{users: users, trips: trips, resolver: resolver, countries: countries}
}

// Routes returns the API router. All paths live under the /api prefix.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.Root)
		r.Get("/health", s.GetHealth)
		r.Get("/countries", s.ListCountries)

		r.Post("/users", s.CreateUser)
		r.Get("/users/{id}", s.GetUser)
		r.Patch("/users/{id}", s.UpdateUser)

		r.Post("/trips", s.CreateTrip)
		r.Get("/trips/{userID}", s.ListActiveTrips)
		r.Delete("/trips/{id}", s.DeleteTrip)
		r.Patch("/trips/{id}/complete", s.CompleteTrip)

		r.Post("/check-requirements", s.CheckRequirements)
	})

	return r
}
