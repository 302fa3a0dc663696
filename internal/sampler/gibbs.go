package sampler

import (
	"fmt"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const defaultGibbsGrid = 100

// Gibbs performs exact coordinate-wise conditional draws by inverse-CDF
// sampling on a discretized axis. There is no Metropolis test: both
// intermediate moves are accepted by construction, and the chain
// advances by one full (x, y) sweep per step.
type Gibbs struct {
	base
	GridResolution int
}

func NewGibbs() *Gibbs {
	return &Gibbs{base: newBase(), GridResolution: defaultGibbsGrid}
}

func (s *Gibbs) Name() string { return "gibbs" }

func (s *Gibbs) Init() { s.GridResolution = defaultGibbsGrid }

func (s *Gibbs) Step(sink *mcmc.Sink) {
	cur := s.current()
	b := s.target.Bounds()

	x := s.sampleConditional(b.XMin, b.XMax, func(v float64) float64 {
		return s.target.Density(mcmc.Point{X: v, Y: cur.Y})
	})
	mid := mcmc.Point{X: x, Y: cur.Y}
	sink.Push(mcmc.ProposalEvent{From: cur, To: mid})
	sink.Push(mcmc.AcceptEvent{Pos: mid})

	y := s.sampleConditional(b.YMin, b.YMax, func(v float64) float64 {
		return s.target.Density(mcmc.Point{X: x, Y: v})
	})
	next := mcmc.Point{X: x, Y: y}
	sink.Push(mcmc.ProposalEvent{From: mid, To: next})
	sink.Push(mcmc.AcceptEvent{Pos: next})

	s.steps++
	s.push(next)
}

// sampleConditional draws from the 1-D conditional by discretizing
// [lo, hi] into GridResolution bins, accumulating an unnormalized CDF
// over bin-center densities, and inverting it with uniform jitter
// inside the selected bin. A zero-mass conditional falls back to the
// range midpoint.
func (s *Gibbs) sampleConditional(lo, hi float64, density func(float64) float64) float64 {
	n := s.GridResolution
	if n < 2 {
		n = 2
	}
	width := (hi - lo) / float64(n)

	cdf := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		center := lo + (float64(i)+0.5)*width
		total += density(center)
		cdf[i] = total
	}

	if total <= 0 {
		return (lo + hi) / 2
	}

	u := s.rng.Float64() * total
	for i := 0; i < n; i++ {
		if cdf[i] >= u {
			return lo + (float64(i)+s.rng.Float64())*width
		}
	}
	return hi - width*s.rng.Float64()
}

func (s *Gibbs) Params() map[string]float64 {
	return map[string]float64{"grid": float64(s.GridResolution)}
}

func (s *Gibbs) SetParam(name string, value float64) error {
	if name != "grid" {
		return fmt.Errorf("%w: %s", mcmc.ErrUnknownParam, name)
	}
	if value < 2 {
		value = 2
	}
	s.GridResolution = int(value)
	return nil
}
