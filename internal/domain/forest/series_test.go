package forest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

type fixedSource struct {
	values []float64
	next   int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func TestGenerateYearlySeriesContiguous(t *testing.T) {
	ranges := [][2]int{{2001, 2023}, {2010, 2010}, {1999, 2001}}
	for _, r := range ranges {
		samples, err := GenerateYearlySeries(&fixedSource{values: []float64{0.3}}, r[0], r[1], DefaultBand)
		require.NoError(t, err)
		require.Len(t, samples, r[1]-r[0]+1)
		for i, s := range samples {
			require.Equal(t, r[0]+i, s.Year)
		}
	}
}

func TestGenerateYearlySeriesBandEdges(t *testing.T) {
	src := &fixedSource{values: []float64{0, 0.5, 0.9999999999}}
	samples, err := GenerateYearlySeries(src, 2001, 2003, DefaultBand)
	require.NoError(t, err)

	require.Equal(t, 150000.0, samples[0].AreaHa)
	require.Equal(t, 250000.0, samples[1].AreaHa)
	require.Equal(t, 349999.0, samples[2].AreaHa)
	for _, s := range samples {
		require.Equal(t, s.AreaHa*0.5, s.Emissions)
	}
	require.Equal(t, 749999.0, TotalArea(samples))
}

func TestGenerateYearlySeriesInvalidRange(t *testing.T) {
	samples, err := GenerateYearlySeries(&fixedSource{values: []float64{0.1}}, 2023, 2001, DefaultBand)
	require.Nil(t, samples)
	require.True(t, apperrors.IsCode(err, CodeInvalidRange))
}

func TestGenerateYearlySeriesInvertedBand(t *testing.T) {
	_, err := GenerateYearlySeries(&fixedSource{values: []float64{0.1}}, 2001, 2002, AreaBand{MinHa: 10, MaxHa: 5})
	require.True(t, apperrors.IsCode(err, CodeInvalidRange))
}

func TestGenerateYearlySeriesRejectsOversizedRange(t *testing.T) {
	ranges := [][2]int{
		{math.MinInt, math.MaxInt},
		{-5000000000000000000, 5000000000000000000},
		{0, math.MaxInt},
		{2001, 2001 + MaxSeriesSpan},
	}
	for _, r := range ranges {
		samples, err := GenerateYearlySeries(&fixedSource{values: []float64{0.1}}, r[0], r[1], DefaultBand)
		require.Nil(t, samples, "range %v", r)
		require.True(t, apperrors.IsCode(err, CodeInvalidRange), "range %v", r)
	}
}

func TestGenerateYearlySeriesEndsAtMaxInt(t *testing.T) {
	samples, err := GenerateYearlySeries(&fixedSource{values: []float64{0.1}}, math.MaxInt-2, math.MaxInt, DefaultBand)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	require.Equal(t, math.MaxInt-2, samples[0].Year)
	require.Equal(t, math.MaxInt, samples[2].Year)
}

func TestValidateYearRangeLongestAllowed(t *testing.T) {
	require.NoError(t, ValidateYearRange(2001, 2001+MaxSeriesSpan-1))
	require.NoError(t, ValidateYearRange(math.MinInt, math.MinInt+MaxSeriesSpan-1))
}
