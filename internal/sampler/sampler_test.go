package sampler

import (
	"math"
	"testing"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// stdGauss is the standard 2-D Gaussian test target with an exact
// gradient, the reference case for acceptance-rate checks.
type stdGauss struct{}

func (stdGauss) Density(p mcmc.Point) float64 {
	return math.Exp(-0.5 * (p.X*p.X + p.Y*p.Y))
}

func (g stdGauss) LogDensity(p mcmc.Point) float64 {
	return math.Log(g.Density(p) + mcmc.LogEpsilon)
}

func (stdGauss) Gradient(p mcmc.Point) mcmc.Point { return p.Scale(-1) }

func (stdGauss) MarginalX(x float64) float64 { return math.Exp(-0.5 * x * x) }
func (stdGauss) MarginalY(y float64) float64 { return math.Exp(-0.5 * y * y) }

func (stdGauss) Bounds() mcmc.Bounds {
	return mcmc.Bounds{XMin: -4, XMax: 4, YMin: -4, YMax: 4}
}

// deadTarget has zero density everywhere, exercising degenerate
// fallbacks.
type deadTarget struct{ stdGauss }

func (deadTarget) Density(mcmc.Point) float64 { return 0 }

func (d deadTarget) LogDensity(p mcmc.Point) float64 {
	return math.Log(d.Density(p) + mcmc.LogEpsilon)
}

func run(t *testing.T, s mcmc.Sampler, steps int) *mcmc.Sink {
	t.Helper()
	sink := mcmc.NewSink(mcmc.DefaultTrailCapacity)
	for i := 0; i < steps; i++ {
		s.Step(sink)
		sink.FoldAll()
	}
	return sink
}

func TestChainGrowsByOnePerStep(t *testing.T) {
	samplers := []mcmc.Sampler{
		NewRandomWalk(), NewHMC(), NewNUTS(), NewMALA(), NewGibbs(),
	}

	for _, s := range samplers {
		t.Run(s.Name(), func(t *testing.T) {
			s.SetTarget(stdGauss{})
			s.Reset(mcmc.Point{})
			if len(s.Chain()) != 1 {
				t.Fatalf("chain after reset must have length 1, got %d", len(s.Chain()))
			}

			run(t, s, 25)
			if len(s.Chain()) != 26 {
				t.Errorf("chain after 25 steps must have length 26, got %d", len(s.Chain()))
			}
		})
	}
}

func TestResetToSuppliedStart(t *testing.T) {
	s := NewRandomWalk()
	s.SetTarget(stdGauss{})
	run(t, s, 10)

	start := mcmc.Point{X: 1.5, Y: -0.5}
	s.Reset(start)

	if len(s.Chain()) != 1 || s.Chain()[0] != start {
		t.Errorf("reset chain: got %v", s.Chain())
	}
	if s.AcceptanceRate() != 0 {
		t.Errorf("acceptance rate must reset to 0, got %f", s.AcceptanceRate())
	}
}

// A chain slice held before a reset must keep its contents while the
// sampler fills a new chain.
func TestResetDetachesEarlierChain(t *testing.T) {
	s := NewRandomWalk()
	s.SetTarget(stdGauss{})
	s.Seed(11)
	run(t, s, 10)

	before := s.Chain()
	want := append([]mcmc.Point(nil), before...)

	s.Reset(mcmc.Point{X: 5, Y: 5})
	run(t, s, 10)

	for i := range want {
		if before[i] != want[i] {
			t.Fatalf("entry %d rewritten after reset: got %v, want %v", i, before[i], want[i])
		}
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	makeChain := func() []mcmc.Point {
		s := NewRandomWalk()
		s.SetTarget(stdGauss{})
		s.Seed(7)
		s.Reset(mcmc.Point{})
		run(t, s, 50)
		return s.Chain()
	}

	a := makeChain()
	b := makeChain()

	if len(a) != len(b) {
		t.Fatalf("chain lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("chains diverge at step %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// Five seeded steps produce a deterministic event stream: one
// proposal/decision pair per step and a final chain of length six.
func TestSeededEventSequence(t *testing.T) {
	s := NewRandomWalk()
	s.SetTarget(stdGauss{})
	s.Seed(42)
	s.Reset(mcmc.Point{})

	sink := mcmc.NewSink(mcmc.DefaultTrailCapacity)
	for i := 0; i < 5; i++ {
		s.Step(sink)
		if sink.Pending() != 2 {
			t.Fatalf("step %d: expected proposal+decision pair, got %d events", i, sink.Pending())
		}
		sink.FoldAll()
	}

	if len(s.Chain()) != 6 {
		t.Errorf("expected chain of 6, got %d", len(s.Chain()))
	}
}
