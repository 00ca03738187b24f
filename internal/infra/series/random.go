package series

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/yanqian/forest-watch/internal/domain/forest"
)

// Generator produces synthetic yearly loss series. Nothing is memoized, so
// every call draws fresh values.
type Generator struct {
	rng  forest.RandomSource
	band forest.AreaBand
}

// NewGenerator draws from the process-wide random source.
func NewGenerator(band forest.AreaBand) *Generator {
	return &Generator{rng: globalSource{}, band: band}
}

// NewSeededGenerator draws from a private PCG source so a given seed always
// replays the same sequence of series.
func NewSeededGenerator(seed uint64, band forest.AreaBand) *Generator {
	return &Generator{
		rng:  &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))},
		band: band,
	}
}

// Series implements forest.SeriesSource.
func (g *Generator) Series(ctx context.Context, start, end int) ([]forest.YearlySample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return forest.GenerateYearlySeries(g.rng, start, end, g.band)
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

var _ forest.SeriesSource = (*Generator)(nil)
