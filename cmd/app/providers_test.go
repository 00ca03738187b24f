package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/forest-watch/internal/domain/forest"
	"github.com/yanqian/forest-watch/internal/infra/config"
	"github.com/yanqian/forest-watch/internal/infra/ratelimit"
	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

func TestProvideForestConfig(t *testing.T) {
	cfg := &config.Config{Forest: config.ForestConfig{
		StartYear:       2005,
		EndYear:         2010,
		MinAreaHa:       1000,
		MaxAreaHa:       2000,
		EmissionsFactor: 0.25,
		TopRegions:      3,
		SourceURL:       "https://example.org",
		Summary:         config.SummaryConfig{TotalForestArea: 10, TreeCoverLossSince2000: 2, PrimaryForestLoss: 1, LossPercentage: 20},
	}}

	got := provideForestConfig(cfg)
	require.Equal(t, forest.AreaBand{MinHa: 1000, MaxHa: 2000, EmissionsFactor: 0.25}, got.Band)
	require.Equal(t, 2005, got.StartYear)
	require.Equal(t, 2010, got.EndYear)
	require.Equal(t, 3, got.TopRegions)
	require.Equal(t, 20.0, got.Summary.LossPercentage)
	require.Equal(t, "https://example.org", got.SourceURL)
}

func TestProvideCatalogEmbedded(t *testing.T) {
	records, err := provideCatalog(&config.Config{}, discardLogger())
	require.NoError(t, err)
	require.Len(t, records, 12)
}

func TestProvideCatalogRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotspots.yaml")
	body := `hotspots:
  - id: "x"
    name: "Outside"
    state: "Nowhere"
    lat: 51.5
    lng: -0.12
    loss: 10
    severity: low
    drivers: [Logging]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := provideCatalog(&config.Config{Forest: config.ForestConfig{CatalogPath: path}}, discardLogger())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, forest.CodeInvalidCatalogEntry))
}

func TestProvideSeriesSourceSeeded(t *testing.T) {
	seed := uint64(7)
	cfg := &config.Config{Forest: config.ForestConfig{Seed: &seed}}
	forestCfg := forest.Config{Band: forest.DefaultBand}

	first, err := provideSeriesSource(cfg, forestCfg).Series(context.Background(), 2001, 2005)
	require.NoError(t, err)
	second, err := provideSeriesSource(cfg, forestCfg).Series(context.Background(), 2001, 2005)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestProvideRateLimiter(t *testing.T) {
	limiter, cleanup := provideRateLimiter(&config.Config{}, discardLogger())
	defer cleanup()
	require.Nil(t, limiter)

	cfg := &config.Config{HTTP: config.HTTPConfig{RateLimit: config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             5,
	}}}
	limiter, cleanup = provideRateLimiter(cfg, discardLogger())
	defer cleanup()
	require.IsType(t, &ratelimit.MemoryLimiter{}, limiter)
}

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = buildValkeyOptions("redis://localhost:6380/2")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6380"}, opt.InitAddress)
	require.Equal(t, 2, opt.SelectDB)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
