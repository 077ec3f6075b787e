package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"

	"ai-marketplace-api/internal/models"
)

const (
	DefaultCountPerCategory = 250
	TagsPerProduct          = 4
	MaxSales                = 5000
	featuredThreshold       = 0.85
)

// Generate builds a catalog with count products per category. The random
// source is injected so callers can seed it for reproducible catalogs.
func Generate(rng *rand.Rand, countPerCategory int) *Catalog {
	byCategory := make(map[models.Category][]models.Product, len(models.AllCategories))
	for _, category := range models.AllCategories {
		byCategory[category] = generateCategory(rng, category, countPerCategory)
	}
	return newCatalog(byCategory)
}

// NewRand returns a PCG-backed source. A zero seed is replaced with a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func generateCategory(rng *rand.Rand, category models.Category, count int) []models.Product {
	if count <= 0 {
		return []models.Product{}
	}

	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, generateProduct(rng, category, i))
	}
	return products
}

func generateProduct(rng *rand.Rand, category models.Category, index int) models.Product {
	complexity := pick(rng, models.AllComplexities)
	bounds := PriceRanges[category]

	return models.Product{
		ID:          fmt.Sprintf("%s-%d", category, index),
		Title:       fmt.Sprintf("%s %d", pick(rng, titlePools[category]), index+1),
		Description: pick(rng, descriptions),
		Category:    category,
		Price:       int(math.Round(float64(bounds.Min) + rng.Float64()*float64(bounds.Max-bounds.Min))),
		Rating:      math.Round((3.5+rng.Float64()*1.5)*10) / 10,
		Complexity:  complexity,
		Tags:        pickN(rng, tagPools[category], TagsPerProduct),
		ImageURL:    imageURL(category, index),
		Featured:    rng.Float64() > featuredThreshold,
		Sales:       int(math.Floor(rng.Float64() * MaxSales)),
	}
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.IntN(len(pool))]
}

// pickN shuffles a copy of pool and keeps the first n, so members stay distinct.
func pickN[T any](rng *rand.Rand, pool []T, n int) []T {
	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func imageURL(category models.Category, index int) string {
	return fmt.Sprintf("https://via.placeholder.com/400x300/6366f1/ffffff?text=%s-%d", category, index)
}
