package forest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

func validHotspot(id string) Hotspot {
	return Hotspot{
		ID:                id,
		Name:              "Test Forest " + id,
		State:             "Test State",
		Lat:               22.5,
		Lng:               80.1,
		Loss:              1000,
		TreeCoverLoss:     10,
		PrimaryForestLoss: 5,
		Share:             1.2,
		Severity:          SeverityModerate,
		Drivers:           []string{"Logging"},
		RecentAlerts:      3,
		RiskLevel:         50,
		ProjectedLoss2030: 800,
		FuturePrediction: []Prediction{
			{Year: 2025, PredictedLoss: 600, Confidence: 80, Scenario: ScenarioModerate},
			{Year: 2030, PredictedLoss: 800, Confidence: 70, Scenario: ScenarioOptimistic},
		},
	}
}

func TestValidateCatalogAcceptsWellFormedRecords(t *testing.T) {
	require.NoError(t, ValidateCatalog([]Hotspot{validHotspot("a"), validHotspot("b")}, IndiaRegion()))
}

func TestValidateCatalogRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *Hotspot)
	}{
		{"empty id", func(h *Hotspot) { h.ID = " " }},
		{"empty name", func(h *Hotspot) { h.Name = "" }},
		{"latitude", func(h *Hotspot) { h.Lat = 91 }},
		{"longitude", func(h *Hotspot) { h.Lng = -181 }},
		{"outside region", func(h *Hotspot) { h.Lat, h.Lng = 51.5, -0.12 }},
		{"negative loss", func(h *Hotspot) { h.Loss = -1 }},
		{"negative alerts", func(h *Hotspot) { h.RecentAlerts = -2 }},
		{"tree cover percentage", func(h *Hotspot) { h.TreeCoverLoss = 101 }},
		{"primary forest percentage", func(h *Hotspot) { h.PrimaryForestLoss = -0.5 }},
		{"risk level", func(h *Hotspot) { h.RiskLevel = 140 }},
		{"unknown severity", func(h *Hotspot) { h.Severity = "extreme" }},
		{"no drivers", func(h *Hotspot) { h.Drivers = nil }},
		{"blank driver", func(h *Hotspot) { h.Drivers = []string{"Mining", " "} }},
		{"unknown scenario", func(h *Hotspot) { h.FuturePrediction[0].Scenario = "apocalyptic" }},
		{"confidence", func(h *Hotspot) { h.FuturePrediction[1].Confidence = 120 }},
		{"prediction order", func(h *Hotspot) { h.FuturePrediction[1].Year = 2025 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := validHotspot("a")
			tc.mutate(&h)
			err := ValidateCatalog([]Hotspot{h}, IndiaRegion())
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, CodeInvalidCatalogEntry), err.Error())
		})
	}
}

func TestValidateCatalogDuplicateID(t *testing.T) {
	err := ValidateCatalog([]Hotspot{validHotspot("a"), validHotspot("a")}, nil)
	require.True(t, apperrors.IsCode(err, CodeInvalidCatalogEntry))
	require.Contains(t, err.Error(), "duplicate id")
}

func TestValidateCatalogWithoutRegion(t *testing.T) {
	h := validHotspot("a")
	h.Lat, h.Lng = 51.5, -0.12
	require.NoError(t, ValidateCatalog([]Hotspot{h}, nil))
}

type sliceSource struct {
	records []Hotspot
	err     error
}

func (s sliceSource) Load(context.Context) ([]Hotspot, error) {
	return s.records, s.err
}

func TestLoadCatalogCopiesRecords(t *testing.T) {
	records := []Hotspot{validHotspot("a")}
	catalog, err := LoadCatalog(context.Background(), sliceSource{records: records}, IndiaRegion())
	require.NoError(t, err)

	records[0].Drivers[0] = "mutated"
	require.Equal(t, "Logging", catalog[0].Drivers[0])
}

func TestLoadCatalogSourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := LoadCatalog(context.Background(), sliceSource{err: boom}, nil)
	require.ErrorIs(t, err, boom)
}
