package packing

import (
	"fmt"
	"math"
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// Engine is the rule-based packing list generator. It is stateless: every
// call is a pure function of its input, so a single Engine is safe to share
// across goroutines.
type Engine struct{}

// NewEngine constructs the rule-based packing engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Generate derives a complete packing list from the trip attributes.
// The result always contains exactly the seven fixed category keys.
//
// Returns domain.ErrValidation when destination, country, or either date is
// missing — the only failure this engine surfaces. Over well-formed input
// generation is total and deterministic.
func (e *Engine) Generate(attrs domain.TripAttributes) (domain.PackingList, error) {
	if err := validateAttributes(attrs); err != nil {
		return nil, err
	}

	rec := Recommend(attrs.Weather, attrs.Activities)

	list := domain.PackingList{
		domain.CategoryClothing:    clothingItems(rec, attrs),
		domain.CategoryAccessories: accessoryItems(rec, attrs),
		domain.CategoryEssentials:  essentialItems(rec, attrs),
		domain.CategoryElectronics: electronicsItems(attrs),
		domain.CategoryToiletries:  toiletryItems(attrs),
		domain.CategoryDocuments:   documentItems(attrs),
		domain.CategoryActivities:  activityItems(attrs),
	}

	return list.Normalize(), nil
}

// Summarize computes packing progress for a list. An empty list reports
// zero percent packed rather than a division-by-zero artifact.
func (e *Engine) Summarize(list domain.PackingList) domain.PackingSummary {
	summary := domain.PackingSummary{
		Categories: make(map[domain.Category]domain.CategoryProgress, 7),
	}

	for _, c := range domain.Categories() {
		progress := domain.CategoryProgress{Total: len(list[c])}
		for _, item := range list[c] {
			if item.Packed {
				progress.Packed++
			}
		}
		summary.TotalItems += progress.Total
		summary.PackedItems += progress.Packed
		summary.Categories[c] = progress
	}

	if summary.TotalItems > 0 {
		pct := 100 * float64(summary.PackedItems) / float64(summary.TotalItems)
		summary.PackedPercentage = int(math.Round(pct))
	}

	return summary
}

// validateAttributes enforces the minimum input the engine can work with.
// Weather and activities are optional; destination, country, and both dates
// are not — no meaningful list can be derived without them.
func validateAttributes(attrs domain.TripAttributes) error {
	if strings.TrimSpace(attrs.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if strings.TrimSpace(attrs.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if attrs.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	if attrs.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", domain.ErrValidation)
	}
	return nil
}
