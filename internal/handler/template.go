package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// templateRequest is the body for POST /templates.
type templateRequest struct {
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	Country     string             `json:"country"`
	PackingList domain.PackingList `json:"packing_list"`
}

// pagination is the paging block of a list response.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// createTemplate handles POST /templates.
func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	var body templateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.templates.Create(r.Context(), domain.Template{
		Name:        body.Name,
		Destination: body.Destination,
		Country:     body.Country,
		PackingList: body.PackingList,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// listTemplates handles GET /templates.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100).
func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	templates, total, err := s.templates.List(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": templates,
		"pagination": pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// deleteTemplate handles DELETE /templates/{id}.
func (s *Server) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "template not found")
		return
	}

	if err := s.templates.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "template not found")
			return
		}
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed so pagination falls back to its defaults.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
