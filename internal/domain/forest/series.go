package forest

import (
	"fmt"
	"math"

	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

// RandomSource yields uniformly distributed values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// MaxSeriesSpan bounds the number of years a single series may cover.
const MaxSeriesSpan = 200

// ValidateYearRange checks that [start, end] is ordered and covers at most
// MaxSeriesSpan years.
func ValidateYearRange(start, end int) error {
	if end < start {
		return apperrors.Wrap(CodeInvalidRange, fmt.Sprintf("end year %d is before start year %d", end, start), nil)
	}
	// end >= start, so the unsigned difference is exact.
	if uint64(end)-uint64(start) >= MaxSeriesSpan {
		return apperrors.Wrap(CodeInvalidRange, fmt.Sprintf("year range %d..%d spans more than %d years", start, end, MaxSeriesSpan), nil)
	}
	return nil
}

// GenerateYearlySeries draws one synthetic sample per year in [start, end].
func GenerateYearlySeries(rng RandomSource, start, end int, band AreaBand) ([]YearlySample, error) {
	if err := ValidateYearRange(start, end); err != nil {
		return nil, err
	}
	if band.MaxHa < band.MinHa {
		return nil, apperrors.Wrap(CodeInvalidRange, "area band maximum is below its minimum", nil)
	}

	width := band.MaxHa - band.MinHa
	count := end - start + 1
	samples := make([]YearlySample, 0, count)
	for i := 0; i < count; i++ {
		year := start + i
		area := band.MinHa + math.Floor(rng.Float64()*width)
		samples = append(samples, YearlySample{
			Year:      year,
			AreaHa:    area,
			Emissions: area * band.EmissionsFactor,
		})
	}
	return samples, nil
}

// TotalArea sums the area of every sample.
func TotalArea(samples []YearlySample) float64 {
	var total float64
	for _, s := range samples {
		total += s.AreaHa
	}
	return total
}
