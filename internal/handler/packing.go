package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// regenerateRequest is the body for POST /trips/{id}/packing-list/regenerate.
// An absent body is treated as {"useAI": false}.
type regenerateRequest struct {
	UseAI bool `json:"useAI"`
}

// regenerateResponse reports the new trip state plus whether the AI path
// degraded to the rule engine and why.
type regenerateResponse struct {
	Data     tripResponse `json:"data"`
	Degraded bool         `json:"degraded"`
	Reason   string       `json:"reason,omitempty"`
}

// packingListRequest is the body for PUT /trips/{id}/packing-list.
type packingListRequest struct {
	PackingList domain.PackingList `json:"packing_list"`
}

// regeneratePackingList handles POST /trips/{id}/packing-list/regenerate.
// The stored list is replaced wholesale; manual edits do not survive.
func (s *Server) regeneratePackingList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var body regenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
	}

	trip, result, err := s.trips.Regenerate(r.Context(), id, body.UseAI)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, regenerateResponse{
		Data:     tripToResponse(trip),
		Degraded: result.Degraded,
		Reason:   result.Reason,
	})
}

// updatePackingList handles PUT /trips/{id}/packing-list.
func (s *Server) updatePackingList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	var body packingListRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	for category := range body.PackingList {
		if !category.Valid() {
			writeBadRequest(w, "unknown category: "+string(category))
			return
		}
	}

	updated, err := s.trips.UpdatePackingList(r.Context(), id, body.PackingList)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// getPackingSummary handles GET /trips/{id}/packing-list/summary.
func (s *Server) getPackingSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	summary, err := s.trips.Summary(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// getSuggestions handles GET /trips/{id}/packing-list/suggestions.
func (s *Server) getSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	suggestions, err := s.trips.Suggestions(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": suggestions})
}
