package forest

import (
	"sort"
	"strings"
)

// RankTopRegions orders hotspots by loss, heaviest first, and returns the
// first n as ranking entries. Equal losses are ordered by state name.
func RankTopRegions(catalog []Hotspot, n int) []RegionRank {
	if n <= 0 {
		return []RegionRank{}
	}

	ordered := make([]Hotspot, len(catalog))
	copy(ordered, catalog)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Loss == ordered[j].Loss {
			return rankName(ordered[i]) < rankName(ordered[j])
		}
		return ordered[i].Loss > ordered[j].Loss
	})

	if n > len(ordered) {
		n = len(ordered)
	}
	out := make([]RegionRank, 0, n)
	for _, h := range ordered[:n] {
		out = append(out, RegionRank{
			Name:       rankName(h),
			Loss:       h.Loss,
			Percentage: h.Share,
		})
	}
	return out
}

// rankName prefers the state over the hotspot's descriptive name.
func rankName(h Hotspot) string {
	if state := strings.TrimSpace(h.State); state != "" {
		return state
	}
	return h.Name
}

// ListMarkers projects the catalog onto map markers, preserving order.
func ListMarkers(catalog []Hotspot) []Marker {
	out := make([]Marker, 0, len(catalog))
	for _, h := range catalog {
		out = append(out, Marker{Hotspot: h.clone(), Style: StyleForSeverity(h.Severity)})
	}
	return out
}
