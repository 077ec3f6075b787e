package services

import (
	"errors"
	"fmt"
	"time"

	"ai-marketplace-api/internal/catalog"
	"ai-marketplace-api/internal/models"
	"ai-marketplace-api/pkg/cache"
	log "github.com/sirupsen/logrus"
)

const (
	ModeDiscovery = "discovery"
	ModeResults   = "results"
)

// FeaturedGridLimit caps the featured grid on the discovery page.
const FeaturedGridLimit = 5

var ErrProductNotFound = errors.New("product not found")

// MarketplaceService serves read-only views over a catalog generated once at
// startup. Rails and the featured grid are computed in the constructor and
// handed out as copies.
type MarketplaceService struct {
	catalog  *catalog.Catalog
	all      []models.Product
	rails    []models.CategoryRail
	featured []models.Product
	cache    *cache.RedisCache
}

func NewMarketplaceService(c *catalog.Catalog, redisCache *cache.RedisCache) *MarketplaceService {
	featured := c.Featured()
	if len(featured) > FeaturedGridLimit {
		featured = featured[:FeaturedGridLimit]
	}

	return &MarketplaceService{
		catalog:  c,
		all:      c.All(),
		rails:    catalog.ComputeRails(c),
		featured: featured,
		cache:    redisCache,
	}
}

func (s *MarketplaceService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *MarketplaceService) Rails() []models.CategoryRail {
	rails := make([]models.CategoryRail, len(s.rails))
	for i, rail := range s.rails {
		rails[i] = models.CategoryRail{Title: rail.Title, Items: models.CloneProducts(rail.Items)}
	}
	return rails
}

// Featured returns the first FeaturedGridLimit featured products in catalog order.
func (s *MarketplaceService) Featured() []models.Product {
	return models.CloneProducts(s.featured)
}

func (s *MarketplaceService) Product(id string) (models.Product, error) {
	p, ok := s.catalog.Find(id)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// Browse returns the discovery page for the default state and the first
// ResultsLimit matches otherwise. Total is always the full match count.
func (s *MarketplaceService) Browse(state models.FilterState) *models.BrowseResponse {
	startTime := time.Now()

	if !IsFiltering(state) {
		return &models.BrowseResponse{
			Mode:      ModeDiscovery,
			Filtering: false,
			Filters:   state,
			Rails:     s.Rails(),
			Featured:  s.Featured(),
			Total:     len(s.all),
			Duration:  time.Since(startTime).String(),
		}
	}

	cacheKey := ""
	if s.cache.IsAvailable() {
		cacheKey = s.cache.GenerateBrowseKey(state)
		if cached, err := s.cache.GetBrowseResults(cacheKey); err == nil && cached != nil {
			cached.Duration = fmt.Sprintf("%s (cached)", time.Since(startTime).String())
			log.Debugf("Cache HIT for key: %s", cacheKey)
			return cached
		}
		log.Debugf("Cache MISS for key: %s", cacheKey)
	}

	filtered := FilterCatalog(s.all, state)
	visible := filtered
	if len(visible) > ResultsLimit {
		visible = visible[:ResultsLimit]
	}

	response := &models.BrowseResponse{
		Mode:      ModeResults,
		Filtering: true,
		Filters:   state,
		Products:  models.CloneProducts(visible),
		Total:     len(filtered),
		Duration:  time.Since(startTime).String(),
	}

	if cacheKey != "" {
		if err := s.cache.SetBrowseResults(cacheKey, response); err != nil {
			log.Warnf("Failed to cache results: %v", err)
		}
	}

	return response
}
