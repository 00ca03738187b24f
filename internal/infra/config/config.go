package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Forest ForestConfig `yaml:"forest"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool         `yaml:"enabled"`
	RequestsPerMinute int          `yaml:"requestsPerMinute"`
	Burst             int          `yaml:"burst"`
	Valkey            ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig points the rate limiter at a shared Valkey instance.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// ForestConfig controls the aggregation domain.
type ForestConfig struct {
	StartYear       int           `yaml:"startYear"`
	EndYear         int           `yaml:"endYear"`
	MinAreaHa       float64       `yaml:"minAreaHa"`
	MaxAreaHa       float64       `yaml:"maxAreaHa"`
	EmissionsFactor float64       `yaml:"emissionsFactor"`
	TopRegions      int           `yaml:"topRegions"`
	Seed            *uint64       `yaml:"seed"`
	CatalogPath     string        `yaml:"catalogPath"`
	SourceURL       string        `yaml:"sourceUrl"`
	Summary         SummaryConfig `yaml:"summary"`
}

// SummaryConfig holds the national headline figures.
type SummaryConfig struct {
	TotalForestArea        float64 `yaml:"totalForestArea"`
	TreeCoverLossSince2000 float64 `yaml:"treeCoverLossSince2000"`
	PrimaryForestLoss      float64 `yaml:"primaryForestLoss"`
	LossPercentage         float64 `yaml:"lossPercentage"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates unset variables from ENV_FILE or ./.env when present.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Addr = v
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("FOREST_START_YEAR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Forest.StartYear = parsed
		}
	}
	if v := os.Getenv("FOREST_END_YEAR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Forest.EndYear = parsed
		}
	}
	if v := os.Getenv("FOREST_TOP_REGIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Forest.TopRegions = parsed
		}
	}
	if v := os.Getenv("FOREST_SEED"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Forest.Seed = &parsed
		}
	}
	if v := os.Getenv("FOREST_CATALOG_PATH"); v != "" {
		cfg.Forest.CatalogPath = v
	}
	if v := os.Getenv("FOREST_SOURCE_URL"); v != "" {
		cfg.Forest.SourceURL = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             40,
				Valkey: ValkeyConfig{
					Prefix: "forest:ratelimit",
				},
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: 100 * time.Millisecond,
			},
		},
		Forest: ForestConfig{
			StartYear:       2001,
			EndYear:         2023,
			MinAreaHa:       150000,
			MaxAreaHa:       350000,
			EmissionsFactor: 0.5,
			TopRegions:      5,
			SourceURL:       "https://www.globalforestwatch.org/",
			Summary: SummaryConfig{
				TotalForestArea:        80000000,
				TreeCoverLossSince2000: 2330000,
				PrimaryForestLoss:      414000,
				LossPercentage:         6,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
		if c.HTTP.RateLimit.Valkey.Enabled && strings.TrimSpace(c.HTTP.RateLimit.Valkey.Addr) == "" {
			return errors.New("http.rateLimit.valkey.addr cannot be empty when valkey is enabled")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if c.Forest.EndYear < c.Forest.StartYear {
		return errors.New("forest.endYear cannot be before forest.startYear")
	}
	if c.Forest.MinAreaHa < 0 || c.Forest.MaxAreaHa <= c.Forest.MinAreaHa {
		return errors.New("forest area band must satisfy 0 <= minAreaHa < maxAreaHa")
	}
	if c.Forest.EmissionsFactor <= 0 {
		return errors.New("forest.emissionsFactor must be positive")
	}
	if c.Forest.TopRegions < 0 {
		return errors.New("forest.topRegions cannot be negative")
	}
	if c.Forest.Summary.LossPercentage < 0 || c.Forest.Summary.LossPercentage > 100 {
		return errors.New("forest.summary.lossPercentage must be within [0,100]")
	}
	return nil
}
