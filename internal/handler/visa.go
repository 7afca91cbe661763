package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// checkRequirementsRequest is the POST /check-requirements body.
// travel_purpose defaults to "tourism"; the table carries a single verdict
// per pair, so the purpose never changes the answer.
type checkRequirementsRequest struct {
	NationalityCode string `json:"nationality_code"`
	DestinationCode string `json:"destination_code"`
	TravelPurpose   string `json:"travel_purpose"`
}

// resolutionResponse is the wire shape of a requirements check answer.
// permitted_days stays a pointer so a stored 0 survives while a true null
// is omitted.
type resolutionResponse struct {
	Found           bool           `json:"found"`
	NationalityCode string         `json:"nationality_code"`
	DestinationCode string         `json:"destination_code"`
	Verdict         domain.Verdict `json:"verdict"`
	PermittedDays   *int           `json:"permitted_days,omitempty"`
	Conditions      []string       `json:"conditions,omitempty"`
	CostUSD         *float64       `json:"cost_usd,omitempty"`
	ProcessingDays  *string        `json:"processing_days,omitempty"`
	LastUpdated     string         `json:"last_updated"`
	ApplicationLink *string        `json:"application_link,omitempty"`
	Message         string         `json:"message,omitempty"`
}

// CheckRequirements handles POST /check-requirements.
// A pair with no table entry is not an error; it resolves to "unknown".
func (s *Server) CheckRequirements(w http.ResponseWriter, r *http.Request) {
	var req checkRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if req.TravelPurpose == "" {
		req.TravelPurpose = "tourism"
	}

	res := s.resolver.Resolve(req.NationalityCode, req.DestinationCode, req.TravelPurpose)

	writeJSON(w, http.StatusOK, resolutionResponse{
		Found:           res.Found,
		NationalityCode: res.NationalityCode,
		DestinationCode: res.DestinationCode,
		Verdict:         res.Verdict,
		PermittedDays:   res.PermittedDays,
		Conditions:      res.Conditions,
		CostUSD:         res.CostUSD,
		ProcessingDays:  res.ProcessingDays,
		LastUpdated:     res.LastUpdated,
		ApplicationLink: res.ApplicationLink,
		Message:         res.Message,
	})
}
