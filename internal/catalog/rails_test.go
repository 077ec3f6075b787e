package catalog

import (
	"testing"

	"ai-marketplace-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRails_TitlesAndPredicates(t *testing.T) {
	c := Generate(NewRand(2024), DefaultCountPerCategory)
	rails := ComputeRails(c)

	require.Len(t, rails, 6)

	predicates := map[string]func(models.Product) bool{
		"Trending Now":        func(p models.Product) bool { return p.Sales > 3000 },
		"Featured AI Agents":  func(p models.Product) bool { return p.Category == models.CategoryAgents && p.Featured },
		"Top Rated Workflows": func(p models.Product) bool { return p.Category == models.CategoryWorkflows && p.Rating >= 4.5 },
		"Popular Automations": func(p models.Product) bool { return p.Category == models.CategoryAutomations && p.Sales > 2000 },
		"New Releases":        func(p models.Product) bool { return p.Sales < 500 },
		"Bestselling Bots":    func(p models.Product) bool { return p.Category == models.CategoryBots && p.Sales > 4000 },
	}
	order := []string{"Trending Now", "Featured AI Agents", "Top Rated Workflows", "Popular Automations", "New Releases", "Bestselling Bots"}

	for i, rail := range rails {
		assert.Equal(t, order[i], rail.Title)
		assert.LessOrEqual(t, len(rail.Items), RailLimit)

		match := predicates[rail.Title]
		for _, p := range rail.Items {
			assert.True(t, match(p), "%s does not belong in %q", p.ID, rail.Title)
		}
	}
}

func TestComputeRails_FirstMatchesInCatalogOrder(t *testing.T) {
	c := Generate(NewRand(11), DefaultCountPerCategory)
	rails := ComputeRails(c)

	var expected []models.Product
	for _, p := range c.All() {
		if p.Sales > 3000 {
			expected = append(expected, p)
		}
		if len(expected) == RailLimit {
			break
		}
	}

	assert.Equal(t, expected, rails[0].Items)
}

func TestComputeRails_FewMatches(t *testing.T) {
	c := FromProducts([]models.Product{
		{ID: "bots-0", Category: models.CategoryBots, Sales: 4500},
		{ID: "bots-1", Category: models.CategoryBots, Sales: 100},
		{ID: "agents-0", Category: models.CategoryAgents, Sales: 3500, Featured: true},
	})
	rails := ComputeRails(c)

	ids := func(items []models.Product) []string {
		out := make([]string, 0, len(items))
		for _, p := range items {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"agents-0", "bots-0"}, ids(rails[0].Items))
	assert.Equal(t, []string{"agents-0"}, ids(rails[1].Items))
	assert.Empty(t, rails[2].Items)
	assert.Empty(t, rails[3].Items)
	assert.Equal(t, []string{"bots-1"}, ids(rails[4].Items))
	assert.Equal(t, []string{"bots-0"}, ids(rails[5].Items))
}
