package handlers

import (
	"strings"

	"ai-marketplace-api/internal/models"
	"ai-marketplace-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// parseFilterState builds a FilterState from query parameters. Missing
// parameters keep their default values; prices are clamped to the slider
// range. category and complexity accept repeated or comma-separated values.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.DefaultFilterState()

	if values, ok := c.GetQueryArray("category"); ok {
		state.Categories = make([]models.Category, 0, len(values))
		for _, v := range splitValues(values) {
			state.Categories = append(state.Categories, models.Category(strings.ToLower(v)))
		}
	}

	if values, ok := c.GetQueryArray("complexity"); ok {
		state.Complexity = make([]models.Complexity, 0, len(values))
		for _, v := range splitValues(values) {
			state.Complexity = append(state.Complexity, normalizeComplexity(v))
		}
	}

	if minPrice := c.Query("min_price"); minPrice != "" {
		if price, ok := utils.ParsePrice(minPrice, models.PriceFloor, models.PriceCeiling); ok {
			state.PriceRange[0] = price
		}
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if price, ok := utils.ParsePrice(maxPrice, models.PriceFloor, models.PriceCeiling); ok {
			state.PriceRange[1] = price
		}
	}

	if minRating := c.Query("min_rating"); minRating != "" {
		if rating, ok := utils.ParseRating(minRating); ok {
			state.MinRating = rating
		}
	}

	state.SearchQuery = c.Query("q")

	return state
}

func splitValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func normalizeComplexity(v string) models.Complexity {
	for _, level := range models.AllComplexities {
		if strings.EqualFold(string(level), v) {
			return level
		}
	}
	return models.Complexity(v)
}
