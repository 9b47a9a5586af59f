// Package packing implements the rule-based packing list engine: the weather
// advisor that turns a weather snapshot into generic item names, the seven
// category generators that turn trip attributes into itemized lists, and the
// engine that assembles them into a complete PackingList.
//
// Everything in this package is a pure function of its input — no I/O, no
// randomness, no shared state. The AI-backed path in internal/ai falls back
// to this engine on any failure.
package packing

import (
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// Recommendation holds the generic item names derived from weather and
// activities. These are bare names, not PackingItems — the category
// generators wrap them with quantities.
type Recommendation struct {
	Clothing    []string
	Accessories []string
	Essentials  []string
}

// Clothing sets per temperature band. Exactly one band fires per snapshot.
var (
	coldClothing = []string{"Warm jacket", "Thermal underwear", "Winter hat", "Gloves", "Scarf"}
	mildClothing = []string{"Light jacket", "Long sleeve shirts", "Pants", "Sweater"}
	warmClothing = []string{"T-shirts", "Shorts", "Light dresses", "Comfortable pants"}
	hotClothing  = []string{"Lightweight clothing", "Tank tops", "Shorts", "Breathable fabrics"}
)

var (
	rainAccessories = []string{"Umbrella", "Rain jacket", "Waterproof shoes", "Waterproof bag"}
	snowAccessories = []string{"Winter boots", "Snow jacket", "Snow pants", "Hand warmers"}
	sunAccessories  = []string{"Sunglasses", "Sunscreen", "Hat", "Light scarf"}
)

var (
	outdoorEssentials    = []string{"Comfortable walking shoes", "Water bottle", "First aid kit", "Map"}
	relaxationEssentials = []string{"Beach towel", "Sunscreen", "Swimsuit", "Beach bag"}
	shoppingEssentials   = []string{"Comfortable shoes", "Shopping bag", "Cash/cards", "Shopping list"}

	// baselineEssentials is always appended last, regardless of activities.
	baselineEssentials = []string{"Passport", "Travel documents", "Phone charger", "Universal adapter", "Medications"}
)

// precipitationThreshold is the arrival-day precipitation probability (%)
// above which rain gear is recommended even without "rain" in the condition.
const precipitationThreshold = 30

// Recommend maps a weather snapshot plus the selected activity tags to
// recommended clothing, accessory, and essential item names.
//
// A nil snapshot yields an empty-but-valid recommendation: the category
// generators still produce a sane baseline from duration and activities.
func Recommend(weather *domain.WeatherSnapshot, activities []string) Recommendation {
	if weather == nil {
		return Recommendation{}
	}

	var rec Recommendation

	// Temperature bands: <10, 10–19, 20–29, ≥30. Mutually exclusive.
	temp := weather.Temperature
	switch {
	case temp < 10:
		rec.Clothing = append(rec.Clothing, coldClothing...)
	case temp < 20:
		rec.Clothing = append(rec.Clothing, mildClothing...)
	case temp < 30:
		rec.Clothing = append(rec.Clothing, warmClothing...)
	default:
		rec.Clothing = append(rec.Clothing, hotClothing...)
	}

	condition := strings.ToLower(weather.Condition)
	precipitation := 0
	if len(weather.Forecast) > 0 {
		precipitation = weather.Forecast[0].Precipitation
	}

	// Rain and snow gear are independent checks and may both fire.
	if strings.Contains(condition, "rain") || precipitation > precipitationThreshold {
		rec.Accessories = append(rec.Accessories, rainAccessories...)
	}
	if strings.Contains(condition, "snow") {
		rec.Accessories = append(rec.Accessories, snowAccessories...)
	}

	// Sun protection can co-occur with the ≥30 clothing band.
	if temp > 25 {
		rec.Accessories = append(rec.Accessories, sunAccessories...)
	}

	if contains(activities, "outdoor-activities") {
		rec.Essentials = append(rec.Essentials, outdoorEssentials...)
	}
	if contains(activities, "relaxation") {
		rec.Essentials = append(rec.Essentials, relaxationEssentials...)
	}
	if contains(activities, "shopping") {
		rec.Essentials = append(rec.Essentials, shoppingEssentials...)
	}

	rec.Essentials = append(rec.Essentials, baselineEssentials...)

	return rec
}

func contains(activities []string, tag string) bool {
	for _, a := range activities {
		if a == tag {
			return true
		}
	}
	return false
}
