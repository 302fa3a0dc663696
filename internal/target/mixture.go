package target

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

type component struct {
	mean   mcmc.Point
	sigma  float64
	weight float64
}

// Mixture is a two-component Gaussian mixture, the standard bimodal
// stress test for random-walk samplers.
type Mixture struct {
	components []component
	bounds     mcmc.Bounds
}

func NewMixture() *Mixture {
	return &Mixture{
		components: []component{
			{mean: mcmc.Point{X: -1.5, Y: -1.5}, sigma: 0.8, weight: 0.5},
			{mean: mcmc.Point{X: 1.5, Y: 1.5}, sigma: 0.8, weight: 0.5},
		},
		bounds: mcmc.Bounds{XMin: -4, XMax: 4, YMin: -4, YMax: 4},
	}
}

func (m *Mixture) Density(p mcmc.Point) float64 {
	sum := 0.0
	for _, c := range m.components {
		d := p.Sub(c.mean)
		s2 := c.sigma * c.sigma
		sum += c.weight * math.Exp(-0.5*(d.X*d.X+d.Y*d.Y)/s2)
	}
	return sum
}

func (m *Mixture) LogDensity(p mcmc.Point) float64 {
	return logDensity(m.Density, p)
}

// Gradient is the density-weighted average of the component gradients.
func (m *Mixture) Gradient(p mcmc.Point) mcmc.Point {
	total := 0.0
	var grad mcmc.Point
	for _, c := range m.components {
		d := p.Sub(c.mean)
		s2 := c.sigma * c.sigma
		f := c.weight * math.Exp(-0.5*(d.X*d.X+d.Y*d.Y)/s2)
		total += f
		grad = grad.Add(d.Scale(-f / s2))
	}
	if total < mcmc.LogEpsilon {
		return fdGradient(m.Density, p, gradStep)
	}
	return grad.Scale(1 / total)
}

func (m *Mixture) MarginalX(x float64) float64 {
	return marginalX(m.Density, m.bounds, x)
}

func (m *Mixture) MarginalY(y float64) float64 {
	return marginalY(m.Density, m.bounds, y)
}

func (m *Mixture) Bounds() mcmc.Bounds { return m.bounds }
