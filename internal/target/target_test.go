package target

import (
	"math"
	"testing"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

func TestGaussianDensity(t *testing.T) {
	g := NewGaussian()

	if got := g.Density(mcmc.Point{}); math.Abs(got-1) > 1e-12 {
		t.Errorf("density at mean should be 1, got %f", got)
	}
	if got := g.Density(mcmc.Point{X: 1}); math.Abs(got-math.Exp(-0.5)) > 1e-12 {
		t.Errorf("density at (1,0): got %f", got)
	}

	want := math.Log(1 + mcmc.LogEpsilon)
	if got := g.LogDensity(mcmc.Point{}); math.Abs(got-want) > 1e-12 {
		t.Errorf("log density at mean: got %f, want %f", got, want)
	}
}

func TestLogDensityFiniteAtZero(t *testing.T) {
	c := NewCustom("dead", func(mcmc.Point) float64 { return 0 },
		mcmc.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1})

	got := c.LogDensity(mcmc.Point{})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("log density of zero density must stay finite, got %f", got)
	}
}

// Analytic gradients must agree with the centered finite difference of
// the log-density to second order in the step.
func TestAnalyticGradientsMatchFiniteDifference(t *testing.T) {
	tests := []struct {
		name string
		dist mcmc.Target
		f    densityFn
	}{
		{"gaussian", NewGaussian(), NewGaussian().Density},
		{"mixture", NewMixture(), NewMixture().Density},
		{"ring", NewRing(), NewRing().Density},
		{"banana", NewBanana(), NewBanana().Density},
	}

	points := []mcmc.Point{
		{X: 0.3, Y: -0.7},
		{X: 1.2, Y: 0.9},
		{X: -1.8, Y: 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range points {
				want := fdGradient(tt.f, p, gradStep)
				got := tt.dist.Gradient(p)
				if diff := got.Sub(want).Norm(); diff > 1e-4 {
					t.Errorf("gradient mismatch at %v: analytic %v, fd %v", p, got, want)
				}
			}
		})
	}
}

// For a separable density the marginal must be proportional to the 1-D
// factor: the ratio marginalX(a)/marginalX(b) equals f(a)/f(b).
func TestGaussianMarginalSeparable(t *testing.T) {
	g := NewGaussian()

	ratio := g.MarginalX(0.5) / g.MarginalX(1.5)
	want := math.Exp(-0.5*0.25) / math.Exp(-0.5*2.25)
	if math.Abs(ratio-want) > 1e-6 {
		t.Errorf("marginal ratio: got %f, want %f", ratio, want)
	}
}

func TestMarginalOfZeroDensity(t *testing.T) {
	c := NewCustom("dead", func(mcmc.Point) float64 { return 0 },
		mcmc.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1})

	if got := c.MarginalX(0); got != 0 {
		t.Errorf("marginal of zero density must be 0, got %f", got)
	}
	if got := c.MarginalY(0); got != 0 {
		t.Errorf("marginal of zero density must be 0, got %f", got)
	}
}

func TestRingPeaksOnCircle(t *testing.T) {
	r := NewRing()

	on := r.Density(mcmc.Point{X: r.Radius})
	in := r.Density(mcmc.Point{X: r.Radius / 2})
	out := r.Density(mcmc.Point{X: r.Radius * 1.5})

	if on <= in || on <= out {
		t.Errorf("density must peak on the circle: on=%f in=%f out=%f", on, in, out)
	}
}

func TestRingGradientAtOrigin(t *testing.T) {
	r := NewRing()
	if got := r.Gradient(mcmc.Point{}); got != (mcmc.Point{}) {
		t.Errorf("gradient at origin must be zero, got %v", got)
	}
}

func TestMixtureBimodal(t *testing.T) {
	m := NewMixture()

	mode := m.Density(mcmc.Point{X: -1.5, Y: -1.5})
	saddle := m.Density(mcmc.Point{})
	if mode <= saddle {
		t.Errorf("mode density %f must exceed saddle density %f", mode, saddle)
	}
}

func TestBoundsReported(t *testing.T) {
	targets := []mcmc.Target{NewGaussian(), NewMixture(), NewRing(), NewBanana()}
	for _, tgt := range targets {
		b := tgt.Bounds()
		if b.Width() <= 0 || b.Height() <= 0 {
			t.Errorf("degenerate bounds: %+v", b)
		}
	}
}
