package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Redis     RedisConfig
	Catalog   CatalogConfig
	Concierge ConciergeConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type LogConfig struct {
	Level  string
	Format string // text, json
}

type RedisConfig struct {
	URL      string
	DB       int
	CacheTTL time.Duration
}

type CatalogConfig struct {
	// Seed zero means a fresh random catalog on each start.
	Seed             uint64
	CountPerCategory int
}

type ConciergeConfig struct {
	Delay time.Duration
	// SessionTTL closes sessions idle for longer; zero keeps them until closed.
	SessionTTL time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads .env if present, then environment variables over defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8085")
	v.SetDefault("gin_mode", "release")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", 600)

	v.SetDefault("catalog_seed", 0)
	v.SetDefault("catalog_count_per_category", 250)

	v.SetDefault("concierge_delay_ms", 2000)
	v.SetDefault("concierge_session_ttl_seconds", 900)

	v.SetDefault("rate_limit_rps", 10)
	v.SetDefault("rate_limit_burst", 20)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("port"),
			GinMode: v.GetString("gin_mode"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("redis_url"),
			DB:       v.GetInt("redis_db"),
			CacheTTL: time.Duration(v.GetInt("cache_ttl")) * time.Second,
		},
		Catalog: CatalogConfig{
			Seed:             v.GetUint64("catalog_seed"),
			CountPerCategory: v.GetInt("catalog_count_per_category"),
		},
		Concierge: ConciergeConfig{
			Delay:      time.Duration(v.GetInt("concierge_delay_ms")) * time.Millisecond,
			SessionTTL: time.Duration(v.GetInt("concierge_session_ttl_seconds")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("rate_limit_rps"),
			Burst:             v.GetInt("rate_limit_burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.Catalog.CountPerCategory <= 0 {
		return fmt.Errorf("catalog count per category must be positive, got %d", c.Catalog.CountPerCategory)
	}
	if c.Concierge.Delay < 0 {
		return fmt.Errorf("concierge delay cannot be negative")
	}
	if c.Concierge.SessionTTL < 0 {
		return fmt.Errorf("concierge session ttl cannot be negative")
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive: rps=%v burst=%d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s. Valid formats: text, json", c.Log.Format)
	}
	return nil
}
