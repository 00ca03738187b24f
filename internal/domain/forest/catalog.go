package forest

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

// CatalogSource loads the raw hotspot catalog.
type CatalogSource interface {
	Load(ctx context.Context) ([]Hotspot, error)
}

// LoadCatalog reads and validates the catalog. The returned slice is owned by
// the caller and is never handed out again by the service.
func LoadCatalog(ctx context.Context, src CatalogSource, region *Region) (Catalog, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := ValidateCatalog(records, region); err != nil {
		return nil, err
	}
	return Catalog(cloneHotspots(records)), nil
}

// ValidateCatalog checks every record and fails on the first bad entry.
// A nil region skips the bounds check.
func ValidateCatalog(records []Hotspot, region *Region) error {
	seen := make(map[string]struct{}, len(records))
	for i, h := range records {
		id := strings.TrimSpace(h.ID)
		if id == "" {
			return invalidEntry(fmt.Sprintf("#%d", i), "id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return invalidEntry(id, "duplicate id")
		}
		seen[id] = struct{}{}
		if err := validateHotspot(h, region); err != nil {
			return invalidEntry(id, err.Error())
		}
	}
	return nil
}

func validateHotspot(h Hotspot, region *Region) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if h.Lat < -90 || h.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", h.Lat)
	}
	if h.Lng < -180 || h.Lng > 180 {
		return fmt.Errorf("longitude %v out of range", h.Lng)
	}
	if region != nil && !region.Contains(h.Lat, h.Lng) {
		return fmt.Errorf("coordinates %v,%v fall outside %s", h.Lat, h.Lng, region.Name)
	}
	if h.Loss < 0 {
		return fmt.Errorf("loss cannot be negative")
	}
	if h.ProjectedLoss2030 < 0 {
		return fmt.Errorf("projected loss cannot be negative")
	}
	if h.RecentAlerts < 0 {
		return fmt.Errorf("recent alerts cannot be negative")
	}
	percentages := []struct {
		name  string
		value float64
	}{
		{"treeCoverLoss", h.TreeCoverLoss},
		{"primaryForestLoss", h.PrimaryForestLoss},
		{"share", h.Share},
		{"riskLevel", h.RiskLevel},
	}
	for _, p := range percentages {
		if !isPercentage(p.value) {
			return fmt.Errorf("%s %v must be within [0,100]", p.name, p.value)
		}
	}
	if !h.Severity.Valid() {
		return fmt.Errorf("unknown severity %q", h.Severity)
	}
	if len(h.Drivers) == 0 {
		return fmt.Errorf("at least one driver is required")
	}
	for _, d := range h.Drivers {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("driver names cannot be empty")
		}
	}
	lastYear := 0
	for i, p := range h.FuturePrediction {
		if !p.Scenario.Valid() {
			return fmt.Errorf("prediction %d: unknown scenario %q", i, p.Scenario)
		}
		if !isPercentage(p.Confidence) {
			return fmt.Errorf("prediction %d: confidence %v must be within [0,100]", i, p.Confidence)
		}
		if p.PredictedLoss < 0 {
			return fmt.Errorf("prediction %d: predicted loss cannot be negative", i)
		}
		if i > 0 && p.Year <= lastYear {
			return fmt.Errorf("prediction %d: year %d is not after %d", i, p.Year, lastYear)
		}
		lastYear = p.Year
	}
	return nil
}

func isPercentage(v float64) bool {
	return v >= 0 && v <= 100
}

func invalidEntry(id, reason string) error {
	return apperrors.Wrap(CodeInvalidCatalogEntry, fmt.Sprintf("catalog entry %s: %s", id, reason), nil)
}
