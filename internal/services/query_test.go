package services

import (
	"testing"

	"ai-marketplace-api/internal/catalog"
	"ai-marketplace-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discordBot() models.Product {
	return models.Product{
		ID:          "bots-2",
		Title:       "Discord Community Bot 3",
		Description: "Deploy in minutes and see results instantly with our pre-configured workflows.",
		Category:    models.CategoryBots,
		Price:       120,
		Rating:      4.6,
		Complexity:  models.ComplexityAdvanced,
		Tags:        []string{"Chat", "Social", "Community", "Support"},
	}
}

func TestFilterCatalog_Example(t *testing.T) {
	products := []models.Product{discordBot()}
	state := models.FilterState{
		Categories:  []models.Category{models.CategoryBots},
		PriceRange:  [2]int{0, 500},
		MinRating:   4.5,
		Complexity:  []models.Complexity{models.ComplexityAdvanced},
		SearchQuery: "discord",
	}

	assert.Len(t, FilterCatalog(products, state), 1)

	state.MinRating = 4.7
	assert.Empty(t, FilterCatalog(products, state))
}

func TestFilterCatalog_Predicates(t *testing.T) {
	products := []models.Product{discordBot()}

	tests := []struct {
		name   string
		mutate func(*models.FilterState)
		want   int
	}{
		{"default state matches", func(*models.FilterState) {}, 1},
		{"category excluded", func(s *models.FilterState) { s.Categories = []models.Category{models.CategoryAgents} }, 0},
		{"no categories", func(s *models.FilterState) { s.Categories = nil }, 0},
		{"price at lower bound", func(s *models.FilterState) { s.PriceRange = [2]int{120, 500} }, 1},
		{"price at upper bound", func(s *models.FilterState) { s.PriceRange = [2]int{0, 120} }, 1},
		{"price below range", func(s *models.FilterState) { s.PriceRange = [2]int{121, 500} }, 0},
		{"inverted price range", func(s *models.FilterState) { s.PriceRange = [2]int{300, 100} }, 0},
		{"rating equal to threshold", func(s *models.FilterState) { s.MinRating = 4.6 }, 1},
		{"complexity other level", func(s *models.FilterState) { s.Complexity = []models.Complexity{models.ComplexityBeginner} }, 0},
		{"complexity includes level", func(s *models.FilterState) {
			s.Complexity = []models.Complexity{models.ComplexityBeginner, models.ComplexityAdvanced}
		}, 1},
		{"search is case insensitive", func(s *models.FilterState) { s.SearchQuery = "DISCORD community" }, 1},
		{"search matches description", func(s *models.FilterState) { s.SearchQuery = "Pre-Configured" }, 1},
		{"search matches neither", func(s *models.FilterState) { s.SearchQuery = "telegram" }, 0},
		{"search ignores tags", func(s *models.FilterState) { s.SearchQuery = "social" }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.DefaultFilterState()
			tt.mutate(&state)
			assert.Len(t, FilterCatalog(products, state), tt.want)
		})
	}
}

func TestFilterCatalog_Idempotent(t *testing.T) {
	c := catalog.Generate(catalog.NewRand(8), catalog.DefaultCountPerCategory)
	state := models.FilterState{
		Categories: []models.Category{models.CategoryAgents, models.CategoryBots},
		PriceRange: [2]int{50, 300},
		MinRating:  4,
		Complexity: []models.Complexity{models.ComplexityExpert},
	}

	once := FilterCatalog(c.All(), state)
	twice := FilterCatalog(once, state)
	assert.Equal(t, once, twice)
}

func TestFilterCatalog_ResetReproducesCatalog(t *testing.T) {
	c := catalog.Generate(catalog.NewRand(9), catalog.DefaultCountPerCategory)

	narrowed := FilterCatalog(c.All(), models.FilterState{
		Categories:  []models.Category{models.CategoryWorkflows},
		PriceRange:  [2]int{0, 100},
		SearchQuery: "flow",
	})
	require.Less(t, len(narrowed), c.Len())

	assert.Equal(t, c.All(), FilterCatalog(c.All(), ResetFilters()))
}

func TestFilterCatalog_EmptyCatalog(t *testing.T) {
	result := FilterCatalog(nil, models.DefaultFilterState())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestIsFiltering(t *testing.T) {
	assert.False(t, IsFiltering(models.DefaultFilterState()))
	assert.False(t, IsFiltering(ResetFilters()))

	deviations := map[string]func(*models.FilterState){
		"fewer categories":    func(s *models.FilterState) { s.Categories = s.Categories[:3] },
		"min rating":          func(s *models.FilterState) { s.MinRating = 3 },
		"price minimum":       func(s *models.FilterState) { s.PriceRange[0] = 1 },
		"price maximum":       func(s *models.FilterState) { s.PriceRange[1] = 499 },
		"complexity selected": func(s *models.FilterState) { s.Complexity = []models.Complexity{models.ComplexityExpert} },
		"search query":        func(s *models.FilterState) { s.SearchQuery = "a" },
	}

	for name, mutate := range deviations {
		t.Run(name, func(t *testing.T) {
			state := models.DefaultFilterState()
			mutate(&state)
			assert.True(t, IsFiltering(state))
		})
	}
}
