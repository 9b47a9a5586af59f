package domain

// Category identifies one of the seven fixed packing list categories.
// The set is closed: generation always populates all seven keys, possibly
// with an empty slice, and nothing else may appear in a PackingList.
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryEssentials  Category = "essentials"
	CategoryElectronics Category = "electronics"
	CategoryToiletries  Category = "toiletries"
	CategoryDocuments   Category = "documents"
	CategoryActivities  Category = "activities"
)

// Categories returns the seven category keys in canonical display order.
// Returns a fresh slice each call so callers can't mutate the canonical set.
func Categories() []Category {
	return []Category{
		CategoryClothing,
		CategoryAccessories,
		CategoryEssentials,
		CategoryElectronics,
		CategoryToiletries,
		CategoryDocuments,
		CategoryActivities,
	}
}

// Valid reports whether c is one of the seven fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryClothing, CategoryAccessories, CategoryEssentials,
		CategoryElectronics, CategoryToiletries, CategoryDocuments,
		CategoryActivities:
		return true
	}
	return false
}

// PackingItem is one entry on the checklist. Essential and Reason are only
// populated by the AI generation path; the rule-based engine leaves them zero.
type PackingItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Packed    bool   `json:"packed"`
	Essential bool   `json:"essential,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// PackingList maps each of the seven categories to its ordered item sequence.
type PackingList map[Category][]PackingItem

// NewPackingList returns a list with all seven categories present and empty.
func NewPackingList() PackingList {
	list := make(PackingList, 7)
	for _, c := range Categories() {
		list[c] = []PackingItem{}
	}
	return list
}

// Normalize returns a copy of the list that satisfies the PackingList
// invariants: exactly the seven fixed category keys, no unknown categories,
// no items with empty names, and every quantity at least 1.
func (l PackingList) Normalize() PackingList {
	out := NewPackingList()
	for _, c := range Categories() {
		for _, item := range l[c] {
			if item.Name == "" {
				continue
			}
			if item.Quantity < 1 {
				item.Quantity = 1
			}
			out[c] = append(out[c], item)
		}
	}
	return out
}

// CategoryProgress is the per-category slice of a PackingSummary.
type CategoryProgress struct {
	Total  int `json:"total"`
	Packed int `json:"packed"`
}

// PackingSummary reports packing progress across the whole list.
// PackedPercentage is 0 for an empty list, never NaN.
type PackingSummary struct {
	TotalItems       int                           `json:"total_items"`
	PackedItems      int                           `json:"packed_items"`
	PackedPercentage int                           `json:"packed_percentage"`
	Categories       map[Category]CategoryProgress `json:"categories"`
}

// Suggestion is a single short packing tip, independent of the full list.
type Suggestion struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Reason   string   `json:"reason"`
}
