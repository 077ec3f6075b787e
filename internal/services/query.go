package services

import (
	"strings"

	"ai-marketplace-api/internal/models"
)

// ResultsLimit caps the product list shown in results mode.
const ResultsLimit = 48

// FilterCatalog returns the products matching every criterion in state, in
// input order. A malformed state (min > max, no categories) yields an empty
// result rather than an error.
func FilterCatalog(products []models.Product, state models.FilterState) []models.Product {
	query := strings.ToLower(state.SearchQuery)

	filtered := make([]models.Product, 0)
	for _, product := range products {
		if !containsCategory(state.Categories, product.Category) {
			continue
		}

		if product.Price < state.PriceRange[0] || product.Price > state.PriceRange[1] {
			continue
		}

		if product.Rating < state.MinRating {
			continue
		}

		if len(state.Complexity) > 0 && !containsComplexity(state.Complexity, product.Complexity) {
			continue
		}

		if !strings.Contains(strings.ToLower(product.Title), query) &&
			!strings.Contains(strings.ToLower(product.Description), query) {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// IsFiltering reports whether state deviates from the defaults, which
// switches the page from discovery mode to results mode.
func IsFiltering(state models.FilterState) bool {
	return len(state.Complexity) > 0 ||
		state.MinRating > 0 ||
		state.PriceRange[0] > models.PriceFloor ||
		state.PriceRange[1] < models.PriceCeiling ||
		len(state.Categories) < len(models.AllCategories) ||
		len(state.SearchQuery) > 0
}

func ResetFilters() models.FilterState {
	return models.DefaultFilterState()
}

func containsCategory(categories []models.Category, c models.Category) bool {
	for _, candidate := range categories {
		if candidate == c {
			return true
		}
	}
	return false
}

func containsComplexity(levels []models.Complexity, c models.Complexity) bool {
	for _, candidate := range levels {
		if candidate == c {
			return true
		}
	}
	return false
}
