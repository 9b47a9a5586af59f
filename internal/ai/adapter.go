package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mehak-2/packpal-app-be/internal/domain"
	"github.com/mehak-2/packpal-app-be/internal/packing"
)

// Result is the outcome of an AI-backed generation call. When the AI path
// cannot complete (missing credential, upstream failure, unparseable
// response), Degraded is true, Reason names what went wrong, and List holds
// the rule-based engine's output instead. Callers therefore always receive a
// valid list; they never see an AI failure as an error.
type Result struct {
	List     domain.PackingList
	Degraded bool
	Reason   string
}

// Adapter generates packing lists via a completion backend, falling back to
// the deterministic rule-based engine on any failure.
type Adapter struct {
	completer Completer
	engine    *packing.Engine
	logger    *slog.Logger
}

// NewAdapter constructs an Adapter over the given completion backend and
// fallback engine.
func NewAdapter(completer Completer, engine *packing.Engine, logger *slog.Logger) *Adapter {
	return &Adapter{completer: completer, engine: engine, logger: logger}
}

// GenerateList produces a packing list for the trip attributes.
//
// The flow is linear with no retries: credential check → completion request
// → JSON parse → normalize. Any failure transitions to the fallback, which
// never fails over well-formed attributes. Only structurally invalid
// attributes (missing destination/country/dates) return an error, and that
// error comes from the engine, identically on both paths.
func (a *Adapter) GenerateList(ctx context.Context, attrs domain.TripAttributes) (Result, error) {
	if !a.completer.Configured() {
		return a.fallback(attrs, "completion backend not configured")
	}

	raw, err := a.completer.Complete(ctx, listPrompt(attrs), CompletionOptions{
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		a.logger.Warn("ai generation failed, using rule-based engine", "error", err)
		return a.fallback(attrs, "completion request failed")
	}

	list, err := parseList(raw)
	if err != nil {
		a.logger.Warn("ai response unparseable, using rule-based engine", "error", err)
		return a.fallback(attrs, "unparseable completion response")
	}

	return Result{List: list}, nil
}

// fallback is the guaranteed terminal state: rule-based generation.
func (a *Adapter) fallback(attrs domain.TripAttributes, reason string) (Result, error) {
	list, err := a.engine.Generate(attrs)
	if err != nil {
		return Result{}, fmt.Errorf("ai.Adapter.GenerateList: %w", err)
	}
	return Result{List: list, Degraded: true, Reason: reason}, nil
}

// aiItem is one item as the completion backend returns it. Quantity,
// essential, and reason are optional in the documented schema.
type aiItem struct {
	Name      string `json:"name"`
	Quantity  *int   `json:"quantity"`
	Essential *bool  `json:"essential"`
	Reason    string `json:"reason"`
}

// aiList is the documented response schema: seven category keys, each an
// array of items. Missing keys decode as nil and normalize to empty.
type aiList struct {
	Clothing    []aiItem `json:"clothing"`
	Accessories []aiItem `json:"accessories"`
	Essentials  []aiItem `json:"essentials"`
	Electronics []aiItem `json:"electronics"`
	Toiletries  []aiItem `json:"toiletries"`
	Documents   []aiItem `json:"documents"`
	Activities  []aiItem `json:"activities"`
}

// parseList decodes and normalizes a completion response into a PackingList:
// quantity defaults to 1, packed to false, essential to false, reason to
// empty; items without a name are dropped; all seven categories are present.
func parseList(raw string) (domain.PackingList, error) {
	var parsed aiList
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("decode packing list: %w", err)
	}

	list := domain.PackingList{
		domain.CategoryClothing:    normalizeItems(parsed.Clothing),
		domain.CategoryAccessories: normalizeItems(parsed.Accessories),
		domain.CategoryEssentials:  normalizeItems(parsed.Essentials),
		domain.CategoryElectronics: normalizeItems(parsed.Electronics),
		domain.CategoryToiletries:  normalizeItems(parsed.Toiletries),
		domain.CategoryDocuments:   normalizeItems(parsed.Documents),
		domain.CategoryActivities:  normalizeItems(parsed.Activities),
	}
	return list.Normalize(), nil
}

func normalizeItems(in []aiItem) []domain.PackingItem {
	out := make([]domain.PackingItem, 0, len(in))
	for _, it := range in {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		item := domain.PackingItem{Name: it.Name, Quantity: 1, Reason: it.Reason}
		if it.Quantity != nil && *it.Quantity >= 1 {
			item.Quantity = *it.Quantity
		}
		if it.Essential != nil {
			item.Essential = *it.Essential
		}
		out = append(out, item)
	}
	return out
}

// Suggest returns a short list of packing tips for the trip, independent of
// the full list. It shares the credential/parse/fallback skeleton of
// GenerateList but its fallback is a small fixed hint list, so Suggest
// never returns an error.
func (a *Adapter) Suggest(ctx context.Context, attrs domain.TripAttributes) []domain.Suggestion {
	if !a.completer.Configured() {
		return fallbackSuggestions(attrs)
	}

	raw, err := a.completer.Complete(ctx, suggestPrompt(attrs), CompletionOptions{
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		a.logger.Warn("ai suggestions failed, using fixed hints", "error", err)
		return fallbackSuggestions(attrs)
	}

	var parsed struct {
		Suggestions []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
			Reason   string `json:"reason"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Suggestions) == 0 {
		a.logger.Warn("ai suggestions unparseable, using fixed hints", "error", err)
		return fallbackSuggestions(attrs)
	}

	out := make([]domain.Suggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		out = append(out, domain.Suggestion{
			Name:     s.Name,
			Category: domain.Category(s.Category),
			Reason:   s.Reason,
		})
	}
	if len(out) == 0 {
		return fallbackSuggestions(attrs)
	}
	return out
}

// fallbackSuggestions is the fixed hint list, augmented when the activities
// mention swimming or hiking (substring match, matching the free-form tags
// users may enter).
func fallbackSuggestions(attrs domain.TripAttributes) []domain.Suggestion {
	suggestions := []domain.Suggestion{
		{
			Name:     "Universal Power Adapter",
			Category: domain.CategoryElectronics,
			Reason:   "Essential for charging devices in different countries",
		},
		{
			Name:     "Portable First Aid Kit",
			Category: domain.CategoryEssentials,
			Reason:   "Important for handling minor injuries while traveling",
		},
		{
			Name:     "Travel Insurance Documents",
			Category: domain.CategoryDocuments,
			Reason:   "Protection against unexpected travel issues",
		},
	}

	if activityMentions(attrs.Activities, "swim") {
		suggestions = append(suggestions, domain.Suggestion{
			Name:     "Waterproof Phone Case",
			Category: domain.CategoryAccessories,
			Reason:   "Protect your phone during water activities",
		})
	}
	if activityMentions(attrs.Activities, "hike") {
		suggestions = append(suggestions, domain.Suggestion{
			Name:     "Hiking Boots",
			Category: domain.CategoryActivities,
			Reason:   "Essential for safe and comfortable hiking",
		})
	}

	return suggestions
}

func activityMentions(activities []string, substr string) bool {
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a), substr) {
			return true
		}
	}
	return false
}
