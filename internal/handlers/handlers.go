package handlers

import (
	"errors"
	"net/http"
	"time"

	"ai-marketplace-api/internal/middleware"
	"ai-marketplace-api/internal/models"
	"ai-marketplace-api/internal/services"
	"ai-marketplace-api/pkg/cache"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	serviceName    = "ai-marketplace-api"
	serviceVersion = "1.0.0"
)

type Handler struct {
	marketplace *services.MarketplaceService
	concierge   *services.Concierge
	cache       *cache.RedisCache
	limiter     *middleware.RateLimiter
}

func New(marketplace *services.MarketplaceService, concierge *services.Concierge, redisCache *cache.RedisCache, limiter *middleware.RateLimiter) *Handler {
	return &Handler{
		marketplace: marketplace,
		concierge:   concierge,
		cache:       redisCache,
		limiter:     limiter,
	}
}

// Router wires the middleware chain and every route.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger())
	if h.limiter != nil {
		r.Use(h.limiter.Middleware())
	}

	r.GET("/health", h.health)
	r.GET("/api/info", h.info)

	r.GET("/rails", h.rails)
	r.GET("/featured", h.featured)
	r.GET("/products", h.products)
	r.GET("/products/:id", h.product)
	r.GET("/filters/default", h.defaultFilters)

	concierge := r.Group("/concierge/sessions")
	concierge.POST("", h.openSession)
	concierge.POST("/:id/analyze", h.analyze)
	concierge.DELETE("/:id", h.closeSession)

	r.GET("/rate-limit/status", h.rateLimitStatus)
	r.GET("/cache/stats", h.cacheStats)
	r.GET("/cache/debug", h.cacheDebug)
	r.DELETE("/cache/flush", h.cacheFlush)

	return r
}

func (h *Handler) health(c *gin.Context) {
	health := gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"version":  serviceVersion,
		"products": h.marketplace.Catalog().Len(),
	}

	if h.cache.IsAvailable() {
		health["cache"] = "redis connected"
	} else {
		health["cache"] = "redis unavailable"
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "AI Marketplace API",
		"version":     serviceVersion,
		"description": "Browse a generated catalog of AI agents, workflows, automations and bots",
		"features":    []string{"Category rails", "Featured grid", "Faceted filtering", "Search", "Concierge recommendations", "Redis caching"},
		"endpoints": map[string]string{
			"GET /rails":                           "Discovery rails",
			"GET /featured":                        "Featured products",
			"GET /products":                        "Filter products (category, min_price, max_price, min_rating, complexity, q)",
			"GET /products/:id":                    "Product detail",
			"GET /filters/default":                 "Default filter state",
			"POST /concierge/sessions":             "Open a concierge session",
			"POST /concierge/sessions/:id/analyze": "Get recommendations for a query",
			"DELETE /concierge/sessions/:id":       "Close a concierge session",
			"GET /health":                          "Health check",
			"GET /cache/stats":                     "Cache statistics",
		},
		"categories":   h.marketplace.Catalog().Counts(),
		"complexities": models.AllComplexities,
	})
}

func (h *Handler) rails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rails": h.marketplace.Rails()})
}

func (h *Handler) featured(c *gin.Context) {
	featured := h.marketplace.Featured()
	c.JSON(http.StatusOK, gin.H{"count": len(featured), "products": featured})
}

func (h *Handler) products(c *gin.Context) {
	state := parseFilterState(c)
	c.JSON(http.StatusOK, h.marketplace.Browse(state))
}

func (h *Handler) product(c *gin.Context) {
	p, err := h.marketplace.Product(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "product_not_found",
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) defaultFilters(c *gin.Context) {
	c.JSON(http.StatusOK, services.ResetFilters())
}

func (h *Handler) openSession(c *gin.Context) {
	s := h.concierge.Open()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"opened_at":  s.OpenedAt.Format(time.RFC3339),
	})
}

func (h *Handler) analyze(c *gin.Context) {
	session, err := h.concierge.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "session_not_found",
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
		return
	}

	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Code:    http.StatusBadRequest,
			Message: "request body must be JSON with a query field",
			Details: err.Error(),
		})
		return
	}

	start := time.Now()
	recommendations, err := session.Analyze(c.Request.Context(), req.Query)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "empty_query",
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	case errors.Is(err, services.ErrSessionClosed):
		c.JSON(http.StatusGone, models.ErrorResponse{
			Error:   "session_closed",
			Code:    http.StatusGone,
			Message: err.Error(),
		})
		return
	default:
		// Client went away during the delay.
		log.Debugf("Concierge analysis aborted for session %s: %v", session.ID, err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		SessionID:       session.ID,
		Query:           req.Query,
		Recommendations: recommendations,
		Duration:        time.Since(start).String(),
	})
}

func (h *Handler) closeSession(c *gin.Context) {
	if err := h.concierge.CloseSession(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "session_not_found",
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) rateLimitStatus(c *gin.Context) {
	if h.limiter == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, h.limiter.Status(c.ClientIP()))
}

func (h *Handler) cacheStats(c *gin.Context) {
	if !h.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	c.JSON(http.StatusOK, h.cache.GetStats())
}

func (h *Handler) cacheDebug(c *gin.Context) {
	if !h.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	keys := h.cache.GetAllKeys()
	keyDetails := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		ttl := h.cache.GetKeyTTL(key)
		keyDetails = append(keyDetails, gin.H{
			"key":         key,
			"ttl_seconds": int(ttl.Seconds()),
			"expires_in":  ttl.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_keys":  len(keys),
		"cache_keys":  keyDetails,
		"cache_stats": h.cache.GetStats(),
		"debug_info": gin.H{
			"redis_available": h.cache.IsAvailable(),
			"timestamp":       time.Now().Format(time.RFC3339),
		},
	})
}

func (h *Handler) cacheFlush(c *gin.Context) {
	if !h.cache.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "cache not available",
		})
		return
	}

	if err := h.cache.FlushCache(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to flush cache",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "cache flushed successfully",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
