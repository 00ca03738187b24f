package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/forest-watch/internal/domain/forest"
	"github.com/yanqian/forest-watch/internal/infra/catalog"
	"github.com/yanqian/forest-watch/internal/infra/config"
	"github.com/yanqian/forest-watch/internal/infra/ratelimit"
	"github.com/yanqian/forest-watch/internal/infra/series"
	httpiface "github.com/yanqian/forest-watch/internal/interface/http"
)

func provideForestConfig(cfg *config.Config) forest.Config {
	return forest.Config{
		StartYear: cfg.Forest.StartYear,
		EndYear:   cfg.Forest.EndYear,
		Band: forest.AreaBand{
			MinHa:           cfg.Forest.MinAreaHa,
			MaxHa:           cfg.Forest.MaxAreaHa,
			EmissionsFactor: cfg.Forest.EmissionsFactor,
		},
		TopRegions: cfg.Forest.TopRegions,
		Summary: forest.NationalSummary{
			TotalForestArea:        cfg.Forest.Summary.TotalForestArea,
			TreeCoverLossSince2000: cfg.Forest.Summary.TreeCoverLossSince2000,
			PrimaryForestLoss:      cfg.Forest.Summary.PrimaryForestLoss,
			LossPercentage:         cfg.Forest.Summary.LossPercentage,
		},
		SourceURL: cfg.Forest.SourceURL,
	}
}

func provideCatalog(cfg *config.Config, logger *slog.Logger) (forest.Catalog, error) {
	var src forest.CatalogSource = catalog.NewEmbeddedSource()
	if path := strings.TrimSpace(cfg.Forest.CatalogPath); path != "" {
		logger.Info("loading hotspot catalog from file", "path", path)
		src = catalog.NewFileSource(path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	records, err := forest.LoadCatalog(ctx, src, forest.IndiaRegion())
	if err != nil {
		return nil, err
	}
	logger.Info("hotspot catalog loaded", "hotspots", len(records))
	return records, nil
}

func provideSeriesSource(cfg *config.Config, forestCfg forest.Config) forest.SeriesSource {
	if cfg.Forest.Seed != nil {
		return series.NewSeededGenerator(*cfg.Forest.Seed, forestCfg.Band)
	}
	return series.NewGenerator(forestCfg.Band)
}

func provideRateLimiter(cfg *config.Config, logger *slog.Logger) (httpiface.RateLimiter, func()) {
	rl := cfg.HTTP.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}
	fallback := ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
	if !rl.Valkey.Enabled {
		return fallback, func() {}
	}

	opt, err := buildValkeyOptions(rl.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory rate limiter", "error", err)
		return fallback, func() {}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory rate limiter", "error", err)
		return fallback, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory rate limiter", "error", err)
		client.Close()
		return fallback, func() {}
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.Valkey.Addr)
	return ratelimit.NewValkeyLimiter(client, rl.Valkey.Prefix, rl.RequestsPerMinute), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
