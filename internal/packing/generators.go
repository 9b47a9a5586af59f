package packing

import (
	"github.com/mehak-2/packpal-app-be/internal/domain"
)

// The seven category generators. Each is a pure function of the weather
// recommendation and trip attributes, returning one category's ordered item
// sequence. Quantities never drop below 1, even for zero-length trips.

// item wraps a bare name into an unpacked PackingItem.
func item(name string, quantity int) domain.PackingItem {
	if quantity < 1 {
		quantity = 1
	}
	return domain.PackingItem{Name: name, Quantity: quantity}
}

// items wraps a list of names at quantity 1 each.
func items(names ...string) []domain.PackingItem {
	out := make([]domain.PackingItem, 0, len(names))
	for _, n := range names {
		out = append(out, item(n, 1))
	}
	return out
}

// scaledQty returns ceil(duration/divisor), flooring duration at 1 day so a
// zero-length trip still packs one of everything.
func scaledQty(duration, divisor int) int {
	if duration < 1 {
		duration = 1
	}
	return (duration + divisor - 1) / divisor
}

// atLeast returns the larger of floor and qty.
func atLeast(floor, qty int) int {
	if qty < floor {
		return floor
	}
	return qty
}

// clothingItems builds the clothing category: weather-recommended garments
// scaled to trip length, everyday baseline, then business and formal sets.
func clothingItems(rec Recommendation, attrs domain.TripAttributes) []domain.PackingItem {
	duration := attrs.DurationDays()

	var out []domain.PackingItem
	for _, name := range rec.Clothing {
		out = append(out, item(name, scaledQty(duration, 3)))
	}

	out = append(out,
		item("Underwear", atLeast(3, scaledQty(duration, 2))),
		item("Socks", atLeast(3, scaledQty(duration, 2))),
		item("Pajamas", 1),
	)

	if attrs.HasActivity("business") {
		out = append(out,
			item("Business suit", 1),
			item("Dress shirts", scaledQty(duration, 2)),
			item("Dress shoes", 1),
			item("Tie", 2),
		)
	}

	if attrs.HasActivity("formal-events") {
		out = append(out,
			item("Formal dress/outfit", 1),
			item("Formal shoes", 1),
			item("Jewelry", 1),
		)
	}

	return out
}

// accessoryItems builds the accessories category: weather gear, everyday
// carry baseline, and outdoor/beach sets per activity.
func accessoryItems(rec Recommendation, attrs domain.TripAttributes) []domain.PackingItem {
	out := items(rec.Accessories...)

	out = append(out, items("Wallet", "Watch", "Belt", "Jewelry")...)

	if attrs.HasActivity("outdoor-activities") {
		out = append(out, items("Backpack", "Water bottle", "Hat", "Sunglasses")...)
	}
	if attrs.HasActivity("relaxation") {
		out = append(out, items("Beach towel", "Beach bag", "Swimsuit")...)
	}

	return out
}

// essentialItems builds the essentials category: weather/activity essentials
// from the advisor, the fixed travel baseline, and long-trip extras.
func essentialItems(rec Recommendation, attrs domain.TripAttributes) []domain.PackingItem {
	out := items(rec.Essentials...)

	out = append(out, items(
		"Passport",
		"Travel documents",
		"Travel insurance",
		"Cash and cards",
		"Phone charger",
		"Universal adapter",
		"Medications",
		"First aid kit",
	)...)

	if attrs.DurationDays() > 7 {
		out = append(out, items("Laundry detergent", "Travel size toiletries")...)
	}

	return out
}

// electronicsItems builds the electronics category: the everyday baseline
// plus photography, business, and entertainment gear per activity.
func electronicsItems(attrs domain.TripAttributes) []domain.PackingItem {
	out := items("Phone", "Phone charger", "Power bank", "Universal adapter")

	if attrs.HasActivity("photography") {
		out = append(out, items("Camera", "Camera charger", "Memory cards", "Tripod")...)
	}
	if attrs.HasActivity("business") {
		out = append(out, items("Laptop", "Laptop charger", "USB drive")...)
	}
	if attrs.HasActivity("entertainment") {
		out = append(out, items("Headphones", "Tablet", "E-reader")...)
	}

	if attrs.DurationDays() > 14 {
		out = append(out, item("Portable speaker", 1))
	}

	return out
}

// toiletryItems builds the toiletries category: a fixed baseline independent
// of trip length, plus grooming and outdoor-protection sets per activity.
func toiletryItems(attrs domain.TripAttributes) []domain.PackingItem {
	out := items(
		"Toothbrush",
		"Toothpaste",
		"Shampoo",
		"Conditioner",
		"Body wash",
		"Deodorant",
		"Hair brush",
		"Razor",
		"Shaving cream",
		"Face wash",
		"Moisturizer",
		"Sunscreen",
		"Lip balm",
		"Nail clippers",
		"Tweezers",
	)

	if attrs.HasActivity("formal-events") {
		out = append(out, items("Makeup", "Hair styling products", "Perfume/cologne")...)
	}
	if attrs.HasActivity("outdoor-activities") {
		out = append(out, items("Insect repellent", "Aloe vera gel", "Hand sanitizer")...)
	}

	return out
}

// documentItems builds the documents category. The destination and country
// parameters are reserved for future localization and do not currently
// alter the output.
func documentItems(_ domain.TripAttributes) []domain.PackingItem {
	return items(
		"Passport",
		"Visa (if required)",
		"Travel insurance",
		"Flight tickets",
		"Hotel reservations",
		"Emergency contacts",
		"Local embassy contact",
		"Medical information",
		"Credit card information",
		"Travel itinerary",
	)
}

// activitySets maps each recognized activity tag to its fixed item set.
// Unrecognized tags contribute nothing; the category has no baseline.
var activitySets = map[string][]string{
	"outdoor-activities": {"Hiking boots", "Compass", "Map", "Water bottle", "Energy bars", "Multi-tool"},
	"relaxation":         {"Beach towel", "Beach umbrella", "Beach chair", "Beach bag", "Swimsuit", "Beach games"},
	"shopping":           {"Shopping bag", "Shopping list", "Extra space in luggage", "Gift wrapping supplies"},
	"food-drink":         {"Restaurant recommendations", "Food allergy cards", "Tasting notes app"},
	"arts-culture":       {"Museum passes", "Guide book", "Audio guide app", "Comfortable walking shoes"},
	"entertainment":      {"Event tickets", "Dress code appropriate clothing", "Entertainment venue information"},
}

// activityItems builds the activities category: the union of the fixed item
// sets for every recognized activity tag, in the order the tags were given.
func activityItems(attrs domain.TripAttributes) []domain.PackingItem {
	var out []domain.PackingItem
	for _, tag := range attrs.Activities {
		if set, ok := activitySets[tag]; ok {
			out = append(out, items(set...)...)
		}
	}
	return out
}
