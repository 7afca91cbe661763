package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// updateUserRequest is the PATCH /users/{id} body. Every field is optional;
// only the fields present in the JSON overwrite stored values.
type updateUserRequest struct {
	FirstName            *string                    `json:"first_name"`
	Nationality          *string                    `json:"nationality"`
	NationalityCode      *string                    `json:"nationality_code"`
	NotificationsEnabled *bool                      `json:"notifications_enabled"`
	OnboardingCompleted  *bool                      `json:"onboarding_completed"`
	SubscriptionStatus   *domain.SubscriptionStatus `json:"subscription_status"`
}

// userResponse is the wire shape of a UserSettings record.
type userResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	FirstName            *string                   `json:"first_name"`
	Nationality          *string                   `json:"nationality"`
	NationalityCode      *string                   `json:"nationality_code"`
	NotificationsEnabled bool                      `json:"notifications_enabled"`
	OnboardingCompleted  bool                      `json:"onboarding_completed"`
	SubscriptionStatus   domain.SubscriptionStatus `json:"subscription_status"`
	TrialStart           time.Time                 `json:"trial_start"`
	CreatedAt            time.Time                 `json:"created_at"`
}

// CreateUser handles POST /users. No input is required; every field defaults.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id can never match a stored record.
		writeError(w, http.StatusNotFound, "not_found", "user not found")
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// UpdateUser handles PATCH /users/{id}. The body is a merge patch: only the
// provided fields overwrite, and a body with no fields at all is a 400.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "user not found")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}

	patch := domain.UserSettingsPatch{
		FirstName:            req.FirstName,
		Nationality:          req.Nationality,
		NationalityCode:      req.NationalityCode,
		NotificationsEnabled: req.NotificationsEnabled,
		OnboardingCompleted:  req.OnboardingCompleted,
		SubscriptionStatus:   req.SubscriptionStatus,
	}

	user, err := s.users.Update(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, r, err, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// userToResponse converts a domain.UserSettings into its wire shape.
func userToResponse(u domain.UserSettings) userResponse {
	return userResponse{
		ID:                   u.ID,
		FirstName:            u.FirstName,
		Nationality:          u.Nationality,
		NationalityCode:      u.NationalityCode,
		NotificationsEnabled: u.NotificationsEnabled,
		OnboardingCompleted:  u.OnboardingCompleted,
		SubscriptionStatus:   u.SubscriptionStatus,
		TrialStart:           u.TrialStart,
		CreatedAt:            u.CreatedAt,
	}
}
