package catalog

import "ai-marketplace-api/internal/models"

// Catalog is the immutable product set for a process lifetime. Accessors
// return deep copies, tags included, so callers cannot mutate it.
type Catalog struct {
	byCategory map[models.Category][]models.Product
	all        []models.Product
	index      map[string]int
}

func newCatalog(byCategory map[models.Category][]models.Product) *Catalog {
	c := &Catalog{
		byCategory: make(map[models.Category][]models.Product, len(models.AllCategories)),
		index:      make(map[string]int),
	}

	for _, category := range models.AllCategories {
		c.byCategory[category] = models.CloneProducts(byCategory[category])
		for _, p := range byCategory[category] {
			c.index[p.ID] = len(c.all)
			c.all = append(c.all, p.Clone())
		}
	}
	if c.all == nil {
		c.all = []models.Product{}
	}

	return c
}

// FromProducts builds a catalog from an explicit product list, grouping by
// category while preserving the given order inside each group.
func FromProducts(products []models.Product) *Catalog {
	byCategory := make(map[models.Category][]models.Product, len(models.AllCategories))
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	return newCatalog(byCategory)
}

// All returns every product in concatenation order: agents, workflows, automations, bots.
func (c *Catalog) All() []models.Product {
	return models.CloneProducts(c.all)
}

func (c *Catalog) ByCategory(category models.Category) []models.Product {
	return models.CloneProducts(c.byCategory[category])
}

func (c *Catalog) Find(id string) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.all[i].Clone(), true
}

// Featured returns the featured products in catalog order.
func (c *Catalog) Featured() []models.Product {
	featured := make([]models.Product, 0)
	for _, p := range c.all {
		if p.Featured {
			featured = append(featured, p.Clone())
		}
	}
	return featured
}

func (c *Catalog) Len() int {
	return len(c.all)
}

// Counts reports the number of products per category.
func (c *Catalog) Counts() map[models.Category]int {
	counts := make(map[models.Category]int, len(models.AllCategories))
	for _, category := range models.AllCategories {
		counts[category] = len(c.byCategory[category])
	}
	return counts
}
