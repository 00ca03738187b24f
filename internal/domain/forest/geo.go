package forest

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const srid = 4326

// Region is a named bounding area hotspots are expected to fall inside.
type Region struct {
	Name    string
	polygon *geom.Polygon
}

// NewRegion builds a region from a closed lng/lat ring.
func NewRegion(name string, ring []geom.Coord) (*Region, error) {
	polygon, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})
	if err != nil {
		return nil, fmt.Errorf("build region %s: %w", name, err)
	}
	return &Region{Name: name, polygon: polygon.SetSRID(srid)}, nil
}

// IndiaRegion is the bounding polygon of mainland India.
func IndiaRegion() *Region {
	region, err := NewRegion("India", []geom.Coord{
		{68.1766, 7.9655},
		{97.4026, 7.9655},
		{97.4026, 35.4940},
		{68.1766, 35.4940},
		{68.1766, 7.9655},
	})
	if err != nil {
		panic(err)
	}
	return region
}

// Bounds returns the region's bounding box.
func (r *Region) Bounds() *geom.Bounds {
	return r.polygon.Bounds()
}

// Contains reports whether the lat/lng point lies within the region bounds.
func (r *Region) Contains(lat, lng float64) bool {
	b := r.Bounds()
	return lng >= b.Min(0) && lng <= b.Max(0) && lat >= b.Min(1) && lat <= b.Max(1)
}

// MarkersFeatureCollection renders markers as GeoJSON points.
func MarkersFeatureCollection(markers []Marker) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, len(markers))
	bounds := geom.NewBounds(geom.XY)
	for _, m := range markers {
		point := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{m.Lng, m.Lat}).SetSRID(srid)
		bounds.Extend(point)
		features = append(features, &geojson.Feature{
			ID:       m.ID,
			Geometry: point,
			Properties: map[string]interface{}{
				"name":         m.Name,
				"state":        m.State,
				"loss":         m.Loss,
				"severity":     string(m.Severity),
				"recentAlerts": m.RecentAlerts,
				"riskLevel":    m.RiskLevel,
				"color":        m.Style.Color,
				"size":         m.Style.Size,
			},
		})
	}
	fc := &geojson.FeatureCollection{Features: features}
	if len(features) > 0 {
		fc.BBox = bounds
	}
	return fc
}
