package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// tripRequest is the body for POST /trips and PUT /trips/{id}.
// Dates are date-only (2006-01-02); openapi_types.Date enforces the format
// during unmarshalling.
type tripRequest struct {
	Destination string              `json:"destination"`
	Country     string              `json:"country"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Activities  []string            `json:"activities"`
}

// tripResponse is the wire shape of a trip. Status is derived from the dates
// at response time, never stored.
type tripResponse struct {
	ID              uuid.UUID               `json:"id"`
	Destination     string                  `json:"destination"`
	Country         string                  `json:"country"`
	StartDate       openapi_types.Date      `json:"start_date"`
	EndDate         openapi_types.Date      `json:"end_date"`
	Status          domain.TripStatus       `json:"status"`
	Activities      []string                `json:"activities"`
	Weather         *domain.WeatherSnapshot `json:"weather,omitempty"`
	DestinationInfo *domain.DestinationInfo `json:"destination_info,omitempty"`
	PackingList     domain.PackingList      `json:"packing_list"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// listTrips handles GET /trips.
// Supports ?status=upcoming|past to filter by lifecycle state.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	status := domain.TripStatus(r.URL.Query().Get("status"))
	if status != "" && status != domain.TripStatusUpcoming && status != domain.TripStatusPast {
		writeBadRequest(w, "status must be upcoming or past")
		return
	}

	trips, err := s.trips.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// getTrip handles GET /trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// updateTrip handles PUT /trips/{id}.
// Only trip attributes are updated; the packing list is managed through the
// /packing-list subroutes.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
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

// deleteTrip handles DELETE /trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeNotFound(w, "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// decodeTrip decodes and converts a trip request body, writing the error
// response itself on failure. Missing dates are left zero for the service
// layer to reject with a field-specific message.
func decodeTrip(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return domain.Trip{}, false
	}

	trip := domain.Trip{
		Destination: body.Destination,
		Country:     body.Country,
		Activities:  body.Activities,
	}
	if body.StartDate != nil {
		trip.StartDate = body.StartDate.Time
	}
	if body.EndDate != nil {
		trip.EndDate = body.EndDate.Time
	}
	return trip, true
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:              t.ID,
		Destination:     t.Destination,
		Country:         t.Country,
		StartDate:       openapi_types.Date{Time: t.StartDate},
		EndDate:         openapi_types.Date{Time: t.EndDate},
		Status:          t.Status(time.Now()),
		Activities:      t.Activities,
		Weather:         t.Weather,
		DestinationInfo: t.DestinationInfo,
		PackingList:     t.PackingList.Normalize(),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if resp.Activities == nil {
		resp.Activities = []string{}
	}
	return resp
}
