package sampler

import (
	"math"
	"testing"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// The acceptance log-ratio must be antisymmetric under swapping the
// endpoints, the detailed-balance requirement for the asymmetric
// Langevin proposal.
func TestMALADetailedBalanceAntisymmetry(t *testing.T) {
	s := NewMALA()
	s.SetTarget(stdGauss{})
	target := stdGauss{}

	logAlpha := func(from, to mcmc.Point) float64 {
		return target.LogDensity(to) - target.LogDensity(from) +
			s.logQ(from, to) - s.logQ(to, from)
	}

	pairs := []struct{ a, b mcmc.Point }{
		{mcmc.Point{X: 0.5, Y: -0.5}, mcmc.Point{X: 1.0, Y: 0.3}},
		{mcmc.Point{X: -1.2, Y: 0.8}, mcmc.Point{X: 0.1, Y: -0.1}},
		{mcmc.Point{}, mcmc.Point{X: 2, Y: 2}},
	}

	for _, pair := range pairs {
		fwd := logAlpha(pair.a, pair.b)
		rev := logAlpha(pair.b, pair.a)
		if math.Abs(fwd+rev) > 1e-10 {
			t.Errorf("log ratio not antisymmetric for %v <-> %v: %f vs %f", pair.a, pair.b, fwd, rev)
		}
	}
}

func TestMALALangevinEventBeforeProposal(t *testing.T) {
	s := NewMALA()
	s.SetTarget(stdGauss{})
	s.Seed(37)

	sink := mcmc.NewSink(8)
	s.Step(sink)
	sink.FoldAll()

	snap := sink.Snapshot()
	if !snap.HasLangevin {
		t.Fatal("MALA must emit the drift/noise decomposition")
	}
	if want := math.Sqrt(s.Eps); math.Abs(snap.LangevinNoise-want) > 1e-12 {
		t.Errorf("noise radius: got %f, want %f", snap.LangevinNoise, want)
	}
}

func TestMALADriftsTowardMode(t *testing.T) {
	s := NewMALA()
	s.SetTarget(stdGauss{})

	q := mcmc.Point{X: 2, Y: 0}
	mu := s.drift(q)

	// Gradient points at the origin from anywhere on a gaussian.
	if mu.Norm() >= q.Norm() {
		t.Errorf("drift must move toward the mode: |mu|=%f |q|=%f", mu.Norm(), q.Norm())
	}
}

func TestMALAAcceptanceOnGaussian(t *testing.T) {
	s := NewMALA()
	s.SetTarget(stdGauss{})
	s.Seed(41)

	run(t, s, 5000)

	rate := s.AcceptanceRate()
	if rate < 0.5 || rate > 1 {
		t.Errorf("unexpected MALA acceptance rate %f", rate)
	}
}

func TestMALAParams(t *testing.T) {
	s := NewMALA()
	if err := s.SetParam("eps", 0.2); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParam("nope", 0); err == nil {
		t.Error("expected error for unknown parameter")
	}

	s.Init()
	if s.Eps != defaultMALAEps {
		t.Error("Init must restore defaults")
	}
}
