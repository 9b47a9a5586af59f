// Package service contains the business logic for the PackPal API.
// Services validate inputs, enforce business rules, and orchestrate repo,
// client, and packing engine calls. No SQL lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mehak-2/packpal-app-be/internal/ai"
	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/packing"
	"github.com/mehak-2/packpal-app-be/internal/repo"
)

// WeatherFetcher provides the weather snapshot for a destination.
// Implemented by client.WeatherClient; defined here so the service can be
// unit-tested without HTTP.
type WeatherFetcher interface {
	Fetch(ctx context.Context, city, country string) *domain.WeatherSnapshot
}

// DestinationLookup provides the destination info card for a country.
// Implemented by client.DestinationClient.
type DestinationLookup interface {
	CountryInfo(ctx context.Context, country string) *domain.DestinationInfo
}

// ListGenerator is the AI-backed packing list generator with guaranteed
// fallback. Implemented by ai.Adapter.
type ListGenerator interface {
	GenerateList(ctx context.Context, attrs domain.TripAttributes) (ai.Result, error)
	Suggest(ctx context.Context, attrs domain.TripAttributes) []domain.Suggestion
}

// TripService implements business logic for Trip operations: validation,
// weather and destination enrichment at creation time, and packing list
// generation and maintenance.
type TripService struct {
	trips        repo.TripRepo
	weather      WeatherFetcher
	destinations DestinationLookup
	engine       *packing.Engine
	ai           ListGenerator
	logger       *slog.Logger
	now          func() time.Time
}

// NewTripService constructs a TripService backed by the provided dependencies.
func NewTripService(trips repo.TripRepo, weather WeatherFetcher, destinations DestinationLookup,
	engine *packing.Engine, generator ListGenerator, logger *slog.Logger) *TripService {
	return &TripService{
		trips:        trips,
		weather:      weather,
		destinations: destinations,
		engine:       engine,
		ai:           generator,
		logger:       logger,
		now:          time.Now,
	}
}

// Create validates the trip, enriches it with a weather snapshot and a
// destination card, generates the initial packing list, then persists.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	// Weather never fails: the client degrades to a default snapshot.
	trip.Weather = s.weather.Fetch(ctx, trip.Destination, trip.Country)
	// The destination card is optional; an unknown country leaves it nil.
	trip.DestinationInfo = s.destinations.CountryInfo(ctx, trip.Country)

	list, err := s.engine.Generate(trip.Attributes())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.PackingList = list

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns trips, optionally filtered to one lifecycle status.
// Pass an empty status for all trips. Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context, status domain.TripStatus) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}

	if status == "" {
		if trips == nil {
			return []domain.Trip{}, nil
		}
		return trips, nil
	}

	now := s.now()
	filtered := []domain.Trip{}
	for _, trip := range trips {
		if trip.Status(now) == status {
			filtered = append(filtered, trip)
		}
	}
	return filtered, nil
}

// Update validates and persists changes to an existing trip's attributes.
// The stored packing list is left untouched — regeneration is an explicit,
// separate operation so manual edits are never silently lost.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	current, err := s.trips.GetByID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	// Attribute updates keep the existing enrichment and checklist.
	trip.Weather = current.Weather
	trip.DestinationInfo = current.DestinationInfo
	trip.PackingList = current.PackingList

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Regenerate replaces the trip's packing list wholesale from its current
// attributes. With useAI set the AI adapter is consulted first and degrades
// to the rule engine on any failure; otherwise the rule engine runs directly.
// The returned ai.Result reports whether and why the output was degraded.
func (s *TripService) Regenerate(ctx context.Context, id uuid.UUID, useAI bool) (domain.Trip, ai.Result, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, ai.Result{}, fmt.Errorf("service.TripService.Regenerate: %w", err)
	}

	var result ai.Result
	if useAI {
		result, err = s.ai.GenerateList(ctx, trip.Attributes())
		if err != nil {
			return domain.Trip{}, ai.Result{}, fmt.Errorf("service.TripService.Regenerate: %w", err)
		}
	} else {
		list, err := s.engine.Generate(trip.Attributes())
		if err != nil {
			return domain.Trip{}, ai.Result{}, fmt.Errorf("service.TripService.Regenerate: %w", err)
		}
		result = ai.Result{List: list}
	}

	updated, err := s.trips.UpdatePackingList(ctx, id, result.List)
	if err != nil {
		return domain.Trip{}, ai.Result{}, fmt.Errorf("service.TripService.Regenerate: %w", err)
	}
	return updated, result, nil
}

// UpdatePackingList replaces the trip's checklist with the caller's edited
// version, normalized to the packing list invariants.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) UpdatePackingList(ctx context.Context, id uuid.UUID, list domain.PackingList) (domain.Trip, error) {
	updated, err := s.trips.UpdatePackingList(ctx, id, list.Normalize())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdatePackingList: %w", err)
	}
	return updated, nil
}

// Summary computes packing progress for a trip's current list.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Summary(ctx context.Context, id uuid.UUID) (domain.PackingSummary, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.PackingSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	return s.engine.Summarize(trip.PackingList), nil
}

// Suggestions returns short packing tips for a trip. Never fails on the AI
// path — the adapter degrades to static suggestions.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Suggestions(ctx context.Context, id uuid.UUID) ([]domain.Suggestion, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Suggestions: %w", err)
	}
	return s.ai.Suggest(ctx, trip.Attributes()), nil
}

// RefreshWeather re-fetches the weather snapshot for every trip that has not
// yet ended. Per-trip failures are logged and skipped so one bad destination
// cannot stall the whole refresh. Called by the scheduler.
func (s *TripService) RefreshWeather(ctx context.Context) error {
	day := s.now().UTC().Truncate(24 * time.Hour)

	trips, err := s.trips.ListUpcoming(ctx, day)
	if err != nil {
		return fmt.Errorf("service.TripService.RefreshWeather: %w", err)
	}

	for _, trip := range trips {
		snapshot := s.weather.Fetch(ctx, trip.Destination, trip.Country)
		if _, err := s.trips.UpdateWeather(ctx, trip.ID, snapshot); err != nil {
			s.logger.Warn("weather refresh failed for trip",
				"trip_id", trip.ID, "destination", trip.Destination, "error", err)
			continue
		}
	}

	s.logger.Info("weather refresh completed", "trips", len(trips))
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination and country must be non-empty (whitespace-only is rejected).
//   - Both dates must be set, and the end must not be before the start.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if trip.EndDate.IsZero() {
		return fmt.Errorf("%w: end_date is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
