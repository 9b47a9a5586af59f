package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/service"
)

type stubGeography struct {
	countries []domain.DestinationInfo
	info      *domain.DestinationInfo
	cities    []domain.City
}

func (s *stubGeography) Countries(_ context.Context) []domain.DestinationInfo { return s.countries }
func (s *stubGeography) CountryInfo(_ context.Context, _ string) *domain.DestinationInfo {
	return s.info
}
func (s *stubGeography) SearchCities(_ context.Context, _ string, _ int) []domain.City {
	return s.cities
}

var _ service.GeographyClient = (*stubGeography)(nil)

func TestDestinationService_Countries_EmptyIsNonNil(t *testing.T) {
	svc := service.NewDestinationService(&stubGeography{})

	got := svc.Countries(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDestinationService_CountryInfo_Found(t *testing.T) {
	svc := service.NewDestinationService(&stubGeography{
		info: &domain.DestinationInfo{Name: "Japan", CountryCode: "JP"},
	})

	got, err := svc.CountryInfo(context.Background(), "Japan")

	require.NoError(t, err)
	assert.Equal(t, "JP", got.CountryCode)
}

func TestDestinationService_CountryInfo_Unknown(t *testing.T) {
	svc := service.NewDestinationService(&stubGeography{})

	_, err := svc.CountryInfo(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_CountryInfo_Empty(t *testing.T) {
	svc := service.NewDestinationService(&stubGeography{})

	_, err := svc.CountryInfo(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinationService_SearchCities_EmptyIsNonNil(t *testing.T) {
	svc := service.NewDestinationService(&stubGeography{})

	got := svc.SearchCities(context.Background(), "zzz", 10)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
