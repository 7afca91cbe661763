package handler

import "net/http"

// ListCountries handles GET /countries.
// The list is static and loaded once at startup; it is served verbatim for
// client dropdowns.
func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.countries)
}
