package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// listCountries handles GET /destinations/countries.
func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) {
	countries := s.destinations.Countries(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"data": countries})
}

// getCountryInfo handles GET /destinations/countries/{country}.
func (s *Server) getCountryInfo(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	info, err := s.destinations.CountryInfo(r.Context(), country)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "country not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// searchCities handles GET /destinations/cities?q=&limit=.
// An empty query returns popular destinations.
func (s *Server) searchCities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	cities := s.destinations.SearchCities(r.Context(), query, limit)
	writeJSON(w, http.StatusOK, map[string]any{"data": cities})
}
