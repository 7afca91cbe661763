package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visaflow/backend/internal/handler"
	"github.com/pkordes/visaflow/backend/internal/service"
	"github.com/pkordes/visaflow/backend/internal/visadata"
)

// newVisaHandler wires a Server over the real embedded table with a pinned
// clock — the resolver is pure, so there is nothing to mock.
func newVisaHandler(t *testing.T) http.Handler {
	t.Helper()
	table, err := visadata.Requirements()
	require.NoError(t, err)

	resolver := service.NewResolverWithClock(table, func() time.Time {
		return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	})
	return handler.NewServer(nil, nil, resolver, nil).Routes()
}

func TestCheckRequirements_200_Found(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"nationality_code": "US",
		"destination_code": "TH",
		"travel_purpose":   "tourism",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/check-requirements", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newVisaHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, true, resp["found"])
	assert.Equal(t, "US", resp["nationality_code"])
	assert.Equal(t, "TH", resp["destination_code"])
	assert.Equal(t, "visa_free", resp["verdict"])
	assert.Equal(t, float64(30), resp["permitted_days"])
	assert.Equal(t, "2025-01-15", resp["last_updated"])
	assert.NotContains(t, resp, "message")
}

func TestCheckRequirements_200_ZeroPermittedDaysSurvives(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"nationality_code": "AU",
		"destination_code": "NZ",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/check-requirements", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newVisaHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Contains(t, resp, "permitted_days", "a stored 0 must not be omitted")
	assert.Equal(t, float64(0), resp["permitted_days"])
}

func TestCheckRequirements_200_Miss(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"nationality_code": "XX",
		"destination_code": "YY",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/check-requirements", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newVisaHandler(t).ServeHTTP(rec, req)

	// An unmatched pair is still a 200, never an error.
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["found"])
	assert.Equal(t, "unknown", resp["verdict"])
	assert.Equal(t, "2025-03-14", resp["last_updated"], "miss carries the processing date")
	assert.Contains(t, resp["message"], "embassy")
	assert.NotContains(t, resp, "permitted_days")
}

func TestCheckRequirements_200_CaseSensitiveMiss(t *testing.T) {
	body := jsonBody(t, map[string]any{
		"nationality_code": "us",
		"destination_code": "th",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/check-requirements", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newVisaHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["found"], "lowercase codes must not match the US-TH entry")
}

func TestCheckRequirements_400_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/check-requirements", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newVisaHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
