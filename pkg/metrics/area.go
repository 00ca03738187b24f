package metrics

import "strconv"

// Hectares is an area measured in hectares.
type Hectares float64

// Millions renders the area in millions of hectares, e.g. "2.33M ha".
func (h Hectares) Millions(precision int) string {
	return strconv.FormatFloat(float64(h)/1e6, 'f', precision, 64) + "M ha"
}

// Thousands renders the area in thousands of hectares, e.g. "414k ha".
func (h Hectares) Thousands(precision int) string {
	return strconv.FormatFloat(float64(h)/1e3, 'f', precision, 64) + "k ha"
}

// Percent renders v with the shortest exact representation and a % suffix.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
