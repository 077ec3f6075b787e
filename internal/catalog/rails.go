package catalog

import "ai-marketplace-api/internal/models"

const RailLimit = 12

type railDefinition struct {
	title string
	// scope is nil for rails drawn from the whole catalog.
	scope *models.Category
	match func(models.Product) bool
}

func categoryScope(c models.Category) *models.Category {
	return &c
}

var railDefinitions = []railDefinition{
	{
		title: "Trending Now",
		match: func(p models.Product) bool { return p.Sales > 3000 },
	},
	{
		title: "Featured AI Agents",
		scope: categoryScope(models.CategoryAgents),
		match: func(p models.Product) bool { return p.Featured },
	},
	{
		title: "Top Rated Workflows",
		scope: categoryScope(models.CategoryWorkflows),
		match: func(p models.Product) bool { return p.Rating >= 4.5 },
	},
	{
		title: "Popular Automations",
		scope: categoryScope(models.CategoryAutomations),
		match: func(p models.Product) bool { return p.Sales > 2000 },
	},
	{
		title: "New Releases",
		match: func(p models.Product) bool { return p.Sales < 500 },
	},
	{
		title: "Bestselling Bots",
		scope: categoryScope(models.CategoryBots),
		match: func(p models.Product) bool { return p.Sales > 4000 },
	},
}

// ComputeRails derives the discovery rails. Each keeps the first RailLimit
// matches in catalog order without re-sorting.
func ComputeRails(c *Catalog) []models.CategoryRail {
	rails := make([]models.CategoryRail, 0, len(railDefinitions))

	for _, def := range railDefinitions {
		source := c.all
		if def.scope != nil {
			source = c.byCategory[*def.scope]
		}

		items := make([]models.Product, 0, RailLimit)
		for _, p := range source {
			if len(items) == RailLimit {
				break
			}
			if def.match(p) {
				items = append(items, p.Clone())
			}
		}

		rails = append(rails, models.CategoryRail{Title: def.title, Items: items})
	}

	return rails
}
