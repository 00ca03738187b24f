package forest

// Config holds runtime knobs for the forest service.
type Config struct {
	StartYear  int
	EndYear    int
	Band       AreaBand
	TopRegions int
	Summary    NationalSummary
	SourceURL  string
}

// AreaBand is the half-open range [Min, Max) yearly areas are drawn from.
type AreaBand struct {
	MinHa           float64
	MaxHa           float64
	EmissionsFactor float64
}

// DefaultBand mirrors the figures the dashboard was built around.
var DefaultBand = AreaBand{MinHa: 150000, MaxHa: 350000, EmissionsFactor: 0.5}

// DefaultSummary is the published national summary for India.
var DefaultSummary = NationalSummary{
	TotalForestArea:        80000000,
	TreeCoverLossSince2000: 2330000,
	PrimaryForestLoss:      414000,
	LossPercentage:         6,
}
