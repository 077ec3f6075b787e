package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"ai-marketplace-api/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "browse:"

type Options struct {
	URL string
	DB  int
	TTL time.Duration
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
	// namespace isolates entries from catalogs generated with different seeds.
	namespace string
}

// NewRedisCache connects to Redis and returns nil when it is unreachable, in
// which case callers run uncached.
func NewRedisCache(opts Options, namespace string) *RedisCache {
	if opts.URL == "" {
		return nil
	}

	opt, err := redis.ParseURL(opts.URL)
	if err != nil {
		log.Warnf("Failed to parse Redis URL: %v", err)
		return nil
	}
	opt.DB = opts.DB

	client := redis.NewClient(opt)
	ctx := context.Background()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.Ping(pingCtx).Result(); err != nil {
		log.Warnf("Redis connection failed: %v", err)
		_ = client.Close()
		return nil
	}

	log.Infof("Redis connected successfully, DB: %d, TTL: %s", opts.DB, opts.TTL)

	return &RedisCache{
		client:    client,
		ttl:       opts.TTL,
		ctx:       ctx,
		namespace: namespace,
	}
}

func (r *RedisCache) GetBrowseResults(key string) (*models.BrowseResponse, error) {
	if r == nil || r.client == nil {
		return nil, fmt.Errorf("redis client not available")
	}

	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var response models.BrowseResponse
	if err := json.Unmarshal([]byte(val), &response); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}

	return &response, nil
}

func (r *RedisCache) SetBrowseResults(key string, response *models.BrowseResponse) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	return r.client.Set(r.ctx, key, data, r.ttl).Err()
}

// GenerateBrowseKey derives a key from the filter state. Set-valued fields
// are sorted so equivalent selections share an entry.
func (r *RedisCache) GenerateBrowseKey(state models.FilterState) string {
	namespace := ""
	if r != nil {
		namespace = r.namespace
	}
	return GenerateBrowseKey(namespace, state)
}

func GenerateBrowseKey(namespace string, state models.FilterState) string {
	categories := make([]string, 0, len(state.Categories))
	for _, c := range state.Categories {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)

	levels := make([]string, 0, len(state.Complexity))
	for _, c := range state.Complexity {
		levels = append(levels, string(c))
	}
	sort.Strings(levels)

	// The rating is written at full precision; thresholds like 4.5 and 4.55
	// select different products.
	key := fmt.Sprintf("%s%s:cat%s:p%d-%d:r%s",
		keyPrefix, namespace, strings.Join(categories, ","),
		state.PriceRange[0], state.PriceRange[1],
		strconv.FormatFloat(state.MinRating, 'g', -1, 64))

	if len(levels) > 0 {
		key += ":cx" + strings.Join(levels, ",")
	}
	if state.SearchQuery != "" {
		key += ":q" + strings.ToLower(state.SearchQuery)
	}

	return key
}

func (r *RedisCache) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) IsAvailable() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) GetStats() map[string]interface{} {
	if r == nil || r.client == nil {
		return map[string]interface{}{
			"status": "unavailable",
		}
	}

	info := r.client.Info(r.ctx, "memory").Val()
	return map[string]interface{}{
		"status":      "connected",
		"ttl_seconds": int(r.ttl.Seconds()),
		"namespace":   r.namespace,
		"memory_info": info,
	}
}

func (r *RedisCache) GetAllKeys() []string {
	if r == nil || r.client == nil {
		return []string{}
	}
	keys, err := r.client.Keys(r.ctx, keyPrefix+"*").Result()
	if err != nil {
		return []string{}
	}
	return keys
}

func (r *RedisCache) FlushCache() error {
	if r == nil || r.client == nil {
		return fmt.Errorf("redis client not available")
	}
	return r.client.FlushDB(r.ctx).Err()
}

func (r *RedisCache) GetKeyTTL(key string) time.Duration {
	if r == nil || r.client == nil {
		return 0
	}
	ttl, err := r.client.TTL(r.ctx, key).Result()
	if err != nil {
		return 0
	}
	return ttl
}
