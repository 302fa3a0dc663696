package target

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// Gaussian is an isotropic normal density centered on Mean.
type Gaussian struct {
	Mean  mcmc.Point
	Sigma float64

	bounds mcmc.Bounds
}

func NewGaussian() *Gaussian {
	return &Gaussian{
		Sigma:  1.0,
		bounds: mcmc.Bounds{XMin: -3.5, XMax: 3.5, YMin: -3.5, YMax: 3.5},
	}
}

func (g *Gaussian) Density(p mcmc.Point) float64 {
	d := p.Sub(g.Mean)
	s2 := g.Sigma * g.Sigma
	return math.Exp(-0.5 * (d.X*d.X + d.Y*d.Y) / s2)
}

func (g *Gaussian) LogDensity(p mcmc.Point) float64 {
	return logDensity(g.Density, p)
}

// Gradient returns the closed form -(p-mean)/sigma^2.
func (g *Gaussian) Gradient(p mcmc.Point) mcmc.Point {
	return g.Mean.Sub(p).Scale(1 / (g.Sigma * g.Sigma))
}

func (g *Gaussian) MarginalX(x float64) float64 {
	return marginalX(g.Density, g.bounds, x)
}

func (g *Gaussian) MarginalY(y float64) float64 {
	return marginalY(g.Density, g.bounds, y)
}

func (g *Gaussian) Bounds() mcmc.Bounds { return g.bounds }
