package models

const (
	PriceFloor   = 0
	PriceCeiling = 500
)

// FilterState is the user-editable criteria set for the product query.
// An empty Complexity means no restriction; an empty Categories matches nothing.
type FilterState struct {
	Categories  []Category   `json:"categories"`
	PriceRange  [2]int       `json:"priceRange"`
	MinRating   float64      `json:"minRating"`
	Complexity  []Complexity `json:"complexity"`
	SearchQuery string       `json:"searchQuery"`
}

// DefaultFilterState is the state used at startup and after a reset.
func DefaultFilterState() FilterState {
	categories := make([]Category, len(AllCategories))
	copy(categories, AllCategories)

	return FilterState{
		Categories:  categories,
		PriceRange:  [2]int{PriceFloor, PriceCeiling},
		MinRating:   0,
		Complexity:  []Complexity{},
		SearchQuery: "",
	}
}
