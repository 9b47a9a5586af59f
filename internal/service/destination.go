package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// GeographyClient provides country and city lookups.
// Implemented by client.DestinationClient.
type GeographyClient interface {
	Countries(ctx context.Context) []domain.DestinationInfo
	CountryInfo(ctx context.Context, country string) *domain.DestinationInfo
	SearchCities(ctx context.Context, query string, limit int) []domain.City
}

// DestinationService exposes the geography lookups behind the destination
// endpoints. The underlying client degrades to static data instead of
// failing, so the only error this service produces is "country unknown".
type DestinationService struct {
	client GeographyClient
}

// NewDestinationService constructs a DestinationService.
func NewDestinationService(client GeographyClient) *DestinationService {
	return &DestinationService{client: client}
}

// Countries lists all known countries. Always returns a non-nil slice.
func (s *DestinationService) Countries(ctx context.Context) []domain.DestinationInfo {
	countries := s.client.Countries(ctx)
	if countries == nil {
		return []domain.DestinationInfo{}
	}
	return countries
}

// CountryInfo returns the destination card for a single country by name.
// Returns domain.ErrNotFound for unknown countries.
func (s *DestinationService) CountryInfo(ctx context.Context, country string) (domain.DestinationInfo, error) {
	if strings.TrimSpace(country) == "" {
		return domain.DestinationInfo{}, fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	info := s.client.CountryInfo(ctx, country)
	if info == nil {
		return domain.DestinationInfo{}, fmt.Errorf("service.DestinationService.CountryInfo: %w", domain.ErrNotFound)
	}
	return *info, nil
}

// SearchCities returns cities matching the query. Always returns a non-nil
// slice; an empty query yields popular destinations.
func (s *DestinationService) SearchCities(ctx context.Context, query string, limit int) []domain.City {
	cities := s.client.SearchCities(ctx, query, limit)
	if cities == nil {
		return []domain.City{}
	}
	return cities
}
