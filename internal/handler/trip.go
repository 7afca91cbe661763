package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// createTripRequest is the POST /trips body. Dates are plain calendar dates
// ("2006-01-02"); a malformed date fails decoding and is a caller error.
type createTripRequest struct {
	UserID              string              `json:"user_id"`
	Country             string              `json:"country"`
	CountryCode         string              `json:"country_code"`
	VisaType            string              `json:"visa_type"`
	EntryDate           *openapi_types.Date `json:"entry_date"`
	ExitDate            *openapi_types.Date `json:"exit_date"`
	ExtensionsAvailable *int                `json:"extensions_available"`
}

// tripResponse is the wire shape of a Trip record.
type tripResponse struct {
	ID                  uuid.UUID          `json:"id"`
	UserID              string             `json:"user_id"`
	Country             string             `json:"country"`
	CountryCode         string             `json:"country_code"`
	VisaType            string             `json:"visa_type"`
	EntryDate           openapi_types.Date `json:"entry_date"`
	ExitDate            openapi_types.Date `json:"exit_date"`
	TotalDays           int                `json:"total_days"`
	ExtensionsAvailable int                `json:"extensions_available"`
	Status              domain.TripStatus  `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
}

// confirmation is the body of delete/complete responses.
type confirmation struct {
	Message string `json:"message"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if req.EntryDate == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "entry_date is required")
		return
	}
	if req.ExitDate == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "exit_date is required")
		return
	}

	trip := domain.Trip{
		UserID:      req.UserID,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		VisaType:    req.VisaType,
		EntryDate:   req.EntryDate.Time,
		ExitDate:    req.ExitDate.Time,
	}
	if req.ExtensionsAvailable != nil {
		trip.ExtensionsAvailable = *req.ExtensionsAvailable
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(created))
}

// ListActiveTrips handles GET /trips/{userID}.
// Returns the user's active trips, capped at 100, always as a JSON array.
func (s *Server) ListActiveTrips(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	trips, err := s.trips.ListActive(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// CompleteTrip handles PATCH /trips/{id}/complete.
// The transition is an unconditional set; repeating it succeeds.
func (s *Server) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	if err := s.trips.Complete(r.Context(), id); err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, confirmation{Message: "trip marked as completed"})
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, confirmation{Message: "trip deleted"})
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:                  t.ID,
		UserID:              t.UserID,
		Country:             t.Country,
		CountryCode:         t.CountryCode,
		VisaType:            t.VisaType,
		EntryDate:           openapi_types.Date{Time: t.EntryDate},
		ExitDate:            openapi_types.Date{Time: t.ExitDate},
		TotalDays:           t.TotalDays,
		ExtensionsAvailable: t.ExtensionsAvailable,
		Status:              t.Status,
		CreatedAt:           t.CreatedAt,
	}
}
