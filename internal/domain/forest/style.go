package forest

const (
	defaultMarkerColor = "#6b7280"
	defaultMarkerSize  = 10
	defaultBadge       = "text-slate-600 bg-slate-50 border-slate-200"
)

// StyleForSeverity maps a severity to its marker color, size and badge.
// Unknown values get the neutral default.
func StyleForSeverity(s Severity) MarkerStyle {
	switch s {
	case SeverityCritical:
		return MarkerStyle{Color: "#dc2626", Size: 16, Badge: "text-red-600 bg-red-50 border-red-200"}
	case SeverityHigh:
		return MarkerStyle{Color: "#ea580c", Size: 14, Badge: "text-orange-600 bg-orange-50 border-orange-200"}
	case SeverityModerate:
		return MarkerStyle{Color: "#f59e0b", Size: 12, Badge: "text-amber-600 bg-amber-50 border-amber-200"}
	case SeverityLow:
		return MarkerStyle{Color: "#84cc16", Size: 10, Badge: "text-lime-600 bg-lime-50 border-lime-200"}
	default:
		return MarkerStyle{Color: defaultMarkerColor, Size: defaultMarkerSize, Badge: defaultBadge}
	}
}

// StyleForScenario returns the badge classes for a forecast scenario.
func StyleForScenario(s Scenario) string {
	switch s {
	case ScenarioOptimistic:
		return "bg-green-100 text-green-800"
	case ScenarioModerate:
		return "bg-yellow-100 text-yellow-800"
	case ScenarioPessimistic:
		return "bg-red-100 text-red-800"
	default:
		return "bg-slate-100 text-slate-800"
	}
}

// RiskBand buckets a 0-100 risk level.
func RiskBand(risk float64) RiskStyle {
	switch {
	case risk >= 80:
		return RiskStyle{Band: "severe", Color: "text-red-600"}
	case risk >= 60:
		return RiskStyle{Band: "elevated", Color: "text-orange-600"}
	case risk >= 40:
		return RiskStyle{Band: "guarded", Color: "text-yellow-600"}
	default:
		return RiskStyle{Band: "low", Color: "text-green-600"}
	}
}

// Legend lists every severity with its style, most severe first.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(Severities))
	for _, s := range Severities {
		out = append(out, LegendEntry{Severity: s, Style: StyleForSeverity(s)})
	}
	return out
}

func detailFor(h Hotspot) HotspotDetail {
	scenarios := make([]ScenarioView, 0, len(h.FuturePrediction))
	for _, p := range h.FuturePrediction {
		scenarios = append(scenarios, ScenarioView{Prediction: p, Badge: StyleForScenario(p.Scenario)})
	}
	return HotspotDetail{
		Marker:    Marker{Hotspot: h.clone(), Style: StyleForSeverity(h.Severity)},
		Risk:      RiskBand(h.RiskLevel),
		Scenarios: scenarios,
	}
}
