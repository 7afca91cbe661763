package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/visaflow/backend/internal/domain"
	"github.com/pkordes/visaflow/backend/internal/repo"
)

// UserService implements the user-settings operations: create with defaults,
// fetch, and merge-style partial update.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// Create generates a new user record with all defaults. No input is required.
func (s *UserService) Create(ctx context.Context) (domain.UserSettings, error) {
	return s.repo.Create(ctx)
}

// Get returns a single user by ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (domain.UserSettings, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges only the explicitly-provided fields of the patch into the
// stored record and returns the result.
//
// A patch with no fields at all is a caller error, rejected before the store
// is touched — a no-op update is an invalid request, not a silent success.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch domain.UserSettingsPatch) (domain.UserSettings, error) {
	if patch.Empty() {
		return domain.UserSettings{}, fmt.Errorf("service.UserService.Update: %w: no update data provided", domain.ErrInvalidRequest)
	}
	if patch.SubscriptionStatus != nil && !patch.SubscriptionStatus.Valid() {
		return domain.UserSettings{}, fmt.Errorf("service.UserService.Update: %w: subscription_status must be one of trial, active, expired", domain.ErrInvalidRequest)
	}

	return s.repo.UpdatePartial(ctx, id, patch)
}
