package forest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/forest-watch/pkg/errors"
	"github.com/yanqian/forest-watch/pkg/metrics"
	"github.com/yanqian/forest-watch/pkg/util"
)

// Catalog is the validated, read-only hotspot table.
type Catalog []Hotspot

// SeriesSource produces the yearly loss series for an inclusive year range.
type SeriesSource interface {
	Series(ctx context.Context, start, end int) ([]YearlySample, error)
}

// Service exposes the aggregated forest figures.
type Service interface {
	FetchYearlyLossData(ctx context.Context) (ForestData, error)
	FetchYearlyRange(ctx context.Context, start, end int) (ForestData, error)
	NationalSummary() SummaryView
	TopRegions(n int) []RegionRank
	HotspotMarkers() []Marker
	Hotspot(id string) (HotspotDetail, error)
	Legend() []LegendEntry
	Dashboard(ctx context.Context) Dashboard
}

type service struct {
	cfg     Config
	catalog Catalog
	byID    map[string]int
	series  SeriesSource
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the forest domain.
func NewService(cfg Config, catalog Catalog, series SeriesSource, logger *slog.Logger) Service {
	owned := Catalog(cloneHotspots(catalog))
	byID := make(map[string]int, len(owned))
	for i, h := range owned {
		byID[strings.TrimSpace(h.ID)] = i
	}
	return &service{
		cfg:     cfg,
		catalog: owned,
		byID:    byID,
		series:  series,
		logger:  logger.With("component", "forest.service"),
		now:     util.NowUTC,
	}
}

func (s *service) FetchYearlyLossData(ctx context.Context) (ForestData, error) {
	return s.FetchYearlyRange(ctx, s.cfg.StartYear, s.cfg.EndYear)
}

func (s *service) FetchYearlyRange(ctx context.Context, start, end int) (ForestData, error) {
	if err := ValidateYearRange(start, end); err != nil {
		return ForestData{}, err
	}
	if err := ctx.Err(); err != nil {
		return ForestData{}, apperrors.Wrap(CodeSeriesError, "yearly loss fetch cancelled", err)
	}

	samples, err := s.series.Series(ctx, start, end)
	if err != nil {
		if apperrors.IsCode(err, CodeInvalidRange) {
			return ForestData{}, err
		}
		return ForestData{}, apperrors.Wrap(CodeSeriesError, "failed to produce yearly loss series", err)
	}
	s.logger.Debug("yearly loss series produced", "start", start, "end", end, "samples", len(samples))

	return ForestData{
		TotalLoss:   TotalArea(samples),
		YearlyData:  samples,
		LastUpdated: util.ISOTimestamp(s.now()),
	}, nil
}

func (s *service) NationalSummary() SummaryView {
	sum := s.cfg.Summary
	return SummaryView{
		NationalSummary: sum,
		Display: SummaryDisplay{
			TotalForestArea:        metrics.Hectares(sum.TotalForestArea).Millions(1),
			TreeCoverLossSince2000: metrics.Hectares(sum.TreeCoverLossSince2000).Millions(2),
			PrimaryForestLoss:      metrics.Hectares(sum.PrimaryForestLoss).Thousands(0),
			LossPercentage:         metrics.Percent(sum.LossPercentage),
		},
	}
}

func (s *service) TopRegions(n int) []RegionRank {
	return RankTopRegions(s.catalog, n)
}

func (s *service) HotspotMarkers() []Marker {
	return ListMarkers(s.catalog)
}

func (s *service) Hotspot(id string) (HotspotDetail, error) {
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return HotspotDetail{}, apperrors.Wrap(CodeNotFound, fmt.Sprintf("hotspot %q not found", id), nil)
	}
	return detailFor(s.catalog[idx]), nil
}

func (s *service) Legend() []LegendEntry {
	return Legend()
}

func (s *service) Dashboard(ctx context.Context) Dashboard {
	view := Dashboard{
		Summary:      s.NationalSummary(),
		TopRegions:   s.TopRegions(s.cfg.TopRegions),
		Markers:      s.HotspotMarkers(),
		YearlyStatus: YearlyStatusReady,
		Source:       s.cfg.SourceURL,
	}

	data, err := s.FetchYearlyLossData(ctx)
	if err != nil {
		s.logger.Error("failed to load forest data", "error", err)
		view.YearlyStatus = YearlyStatusUnavailable
		return view
	}
	view.Yearly = &data
	return view
}
