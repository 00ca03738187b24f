package forest

// Severity classifies how badly a hotspot is affected.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
	SeverityLow      Severity = "low"
)

// Severities lists the categories from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityModerate, SeverityLow}

// Valid reports whether s is one of the known categories.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityModerate, SeverityLow:
		return true
	default:
		return false
	}
}

// Scenario tags the assumption behind a forecast point.
type Scenario string

const (
	ScenarioOptimistic  Scenario = "optimistic"
	ScenarioModerate    Scenario = "moderate"
	ScenarioPessimistic Scenario = "pessimistic"
)

// Valid reports whether s is one of the known scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioOptimistic, ScenarioModerate, ScenarioPessimistic:
		return true
	default:
		return false
	}
}

// Prediction is a forecast point attached to a hotspot.
type Prediction struct {
	Year          int      `json:"year" yaml:"year"`
	PredictedLoss float64  `json:"predictedLoss" yaml:"predictedLoss"`
	Confidence    float64  `json:"confidence" yaml:"confidence"`
	Scenario      Scenario `json:"scenario" yaml:"scenario"`
}

// Hotspot is one deforestation hotspot in the catalog. It doubles as the map
// marker payload.
type Hotspot struct {
	ID                string       `json:"id" yaml:"id"`
	Name              string       `json:"name" yaml:"name"`
	State             string       `json:"state" yaml:"state"`
	Lat               float64      `json:"lat" yaml:"lat"`
	Lng               float64      `json:"lng" yaml:"lng"`
	Loss              float64      `json:"loss" yaml:"loss"`
	TreeCoverLoss     float64      `json:"treeCoverLoss" yaml:"treeCoverLoss"`
	PrimaryForestLoss float64      `json:"primaryForestLoss" yaml:"primaryForestLoss"`
	Share             float64      `json:"share" yaml:"share"`
	Severity          Severity     `json:"severity" yaml:"severity"`
	Drivers           []string     `json:"drivers" yaml:"drivers"`
	Description       string       `json:"description" yaml:"description"`
	RecentAlerts      int          `json:"recentAlerts" yaml:"recentAlerts"`
	RiskLevel         float64      `json:"riskLevel" yaml:"riskLevel"`
	ProjectedLoss2030 float64      `json:"projectedLoss2030" yaml:"projectedLoss2030"`
	FuturePrediction  []Prediction `json:"futurePrediction" yaml:"futurePrediction"`
}

func (h Hotspot) clone() Hotspot {
	out := h
	out.Drivers = append([]string(nil), h.Drivers...)
	out.FuturePrediction = append([]Prediction(nil), h.FuturePrediction...)
	return out
}

func cloneHotspots(in []Hotspot) []Hotspot {
	out := make([]Hotspot, len(in))
	for i, h := range in {
		out[i] = h.clone()
	}
	return out
}

// YearlySample is one year of national tree cover loss.
type YearlySample struct {
	Year      int     `json:"year"`
	AreaHa    float64 `json:"area_ha"`
	Emissions float64 `json:"emissions,omitempty"`
}

// ForestData is the payload of a yearly loss fetch.
type ForestData struct {
	TotalLoss   float64        `json:"totalLoss"`
	YearlyData  []YearlySample `json:"yearlyData"`
	LastUpdated string         `json:"lastUpdated"`
}

// NationalSummary holds the headline national figures.
type NationalSummary struct {
	TotalForestArea        float64 `json:"totalForestArea" yaml:"totalForestArea"`
	TreeCoverLossSince2000 float64 `json:"treeCoverLossSince2000" yaml:"treeCoverLossSince2000"`
	PrimaryForestLoss      float64 `json:"primaryForestLoss" yaml:"primaryForestLoss"`
	LossPercentage         float64 `json:"lossPercentage" yaml:"lossPercentage"`
}

// SummaryDisplay carries the formatted stat card values.
type SummaryDisplay struct {
	TotalForestArea        string `json:"totalForestArea"`
	TreeCoverLossSince2000 string `json:"treeCoverLossSince2000"`
	PrimaryForestLoss      string `json:"primaryForestLoss"`
	LossPercentage         string `json:"lossPercentage"`
}

// SummaryView is the national summary plus its display strings.
type SummaryView struct {
	NationalSummary
	Display SummaryDisplay `json:"display"`
}

// RegionRank is a single entry of the most affected states list.
type RegionRank struct {
	Name       string  `json:"name"`
	Loss       float64 `json:"loss"`
	Percentage float64 `json:"percentage"`
}

// MarkerStyle is the presentation mapping for a severity category.
type MarkerStyle struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
	Badge string `json:"badge"`
}

// Marker is a hotspot enriched with its map style.
type Marker struct {
	Hotspot
	Style MarkerStyle `json:"style"`
}

// HotspotDetail backs the detail panel for one hotspot.
type HotspotDetail struct {
	Marker
	Risk      RiskStyle      `json:"risk"`
	Scenarios []ScenarioView `json:"scenarios"`
}

// RiskStyle is the banded presentation of a risk level.
type RiskStyle struct {
	Band  string `json:"band"`
	Color string `json:"color"`
}

// ScenarioView pairs a forecast point with its scenario badge.
type ScenarioView struct {
	Prediction
	Badge string `json:"badge"`
}

// LegendEntry describes one severity row of the map legend.
type LegendEntry struct {
	Severity Severity    `json:"severity"`
	Style    MarkerStyle `json:"style"`
}

// YearlyStatus reports whether the series could be produced.
type YearlyStatus string

const (
	YearlyStatusReady       YearlyStatus = "ready"
	YearlyStatusUnavailable YearlyStatus = "unavailable"
)

// Dashboard is the composite view consumed by the frontend.
type Dashboard struct {
	Summary      SummaryView  `json:"summary"`
	TopRegions   []RegionRank `json:"topRegions"`
	Markers      []Marker     `json:"markers"`
	Yearly       *ForestData  `json:"yearly,omitempty"`
	YearlyStatus YearlyStatus `json:"yearlyStatus"`
	Source       string       `json:"source"`
}
