// Package domain contains the core data types for the PackPal backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, packing, ai).
package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the derived lifecycle state of a trip relative to "now".
type TripStatus string

const (
	TripStatusUpcoming TripStatus = "upcoming"
	TripStatusPast     TripStatus = "past"
)

// Trip is the top-level aggregate: one planned journey to a destination,
// carrying the weather snapshot fetched at creation time, the destination
// info card, and the generated packing list.
type Trip struct {
	ID              uuid.UUID        `json:"id"`
	Destination     string           `json:"destination"`
	Country         string           `json:"country"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Activities      []string         `json:"activities"`
	Weather         *WeatherSnapshot `json:"weather,omitempty"`
	DestinationInfo *DestinationInfo `json:"destination_info,omitempty"`
	PackingList     PackingList      `json:"packing_list"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Status reports whether the trip is upcoming or past relative to now.
// A trip stays "upcoming" through its last day.
func (t Trip) Status(now time.Time) TripStatus {
	if t.EndDate.Before(now.Truncate(24 * time.Hour)) {
		return TripStatusPast
	}
	return TripStatusUpcoming
}

// Attributes returns the generation-input view of the trip: everything the
// packing engine needs, nothing it must not touch.
func (t Trip) Attributes() TripAttributes {
	return TripAttributes{
		Destination: t.Destination,
		Country:     t.Country,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Activities:  t.Activities,
		Weather:     t.Weather,
	}
}

// TripAttributes is the immutable input to one packing list generation call.
// Weather may be nil — generation must still produce a sane baseline.
type TripAttributes struct {
	Destination string
	Country     string
	StartDate   time.Time
	EndDate     time.Time
	Activities  []string
	Weather     *WeatherSnapshot
}

// DurationDays returns the trip length in whole days, rounding partial days
// up. The result can be zero or negative when EndDate ≤ StartDate; quantity
// math downstream clamps to at least one of everything.
func (a TripAttributes) DurationDays() int {
	return int(math.Ceil(a.EndDate.Sub(a.StartDate).Hours() / 24))
}

// HasActivity reports whether the given activity tag was selected.
func (a TripAttributes) HasActivity(tag string) bool {
	for _, act := range a.Activities {
		if act == tag {
			return true
		}
	}
	return false
}
