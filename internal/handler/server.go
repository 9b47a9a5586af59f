// Package handler implements the HTTP handlers for the PackPal API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, packing.go, destination.go, template.go, health.go) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mehak-2/packpal-app-be/internal/ai"
	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, status domain.TripStatus) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Regenerate(ctx context.Context, id uuid.UUID, useAI bool) (domain.Trip, ai.Result, error)
	UpdatePackingList(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error)
	Summary(ctx context.Context, id uuid.UUID) (domain.PackingSummary, error)
	Suggestions(ctx context.Context, id uuid.UUID) ([]domain.Suggestion, error)
}

// DestinationServicer defines the geography lookups the destination handlers
// depend on.
type DestinationServicer interface {
	Countries(ctx context.Context) []domain.DestinationInfo
	CountryInfo(ctx context.Context, country string) (domain.DestinationInfo, error)
	SearchCities(ctx context.Context, query string, limit int) []domain.City
}

// TemplateServicer defines the template operations the template handlers
// depend on.
type TemplateServicer interface {
	Create(ctx context.Context, tpl domain.Template) (domain.Template, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Template, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips        TripServicer
	destinations DestinationServicer
	templates    TemplateServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, destinations DestinationServicer, templates TemplateServicer) *Server {
	return &Server{trips: trips, destinations: destinations, templates: templates}
}

// Routes returns the chi router with every API endpoint mounted.
// Middleware is applied by the caller (main.go) so tests can exercise the
// routes without logging noise.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Put("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)
			r.Put("/packing-list", s.updatePackingList)
			r.Post("/packing-list/regenerate", s.regeneratePackingList)
			r.Get("/packing-list/summary", s.getPackingSummary)
			r.Get("/packing-list/suggestions", s.getSuggestions)
		})
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/countries", s.listCountries)
		r.Get("/countries/{country}", s.getCountryInfo)
		r.Get("/cities", s.searchCities)
	})

	r.Route("/templates", func(r chi.Router) {
		r.Post("/", s.createTemplate)
		r.Get("/", s.listTemplates)
		r.Delete("/{id}", s.deleteTemplate)
	})

	return r
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
