package target

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// Ring is a donut-shaped density concentrated on a circle of radius
// Radius with Gaussian cross-section of width Width.
type Ring struct {
	Radius float64
	Width  float64

	bounds mcmc.Bounds
}

func NewRing() *Ring {
	return &Ring{
		Radius: 2.0,
		Width:  0.3,
		bounds: mcmc.Bounds{XMin: -3.5, XMax: 3.5, YMin: -3.5, YMax: 3.5},
	}
}

func (r *Ring) Density(p mcmc.Point) float64 {
	d := p.Norm() - r.Radius
	return math.Exp(-0.5 * d * d / (r.Width * r.Width))
}

func (r *Ring) LogDensity(p mcmc.Point) float64 {
	return logDensity(r.Density, p)
}

// Gradient is -(|p|-R)/w^2 along the radial direction. At the origin
// the radial direction is undefined and the gradient is zero.
func (r *Ring) Gradient(p mcmc.Point) mcmc.Point {
	n := p.Norm()
	if n < 1e-12 {
		return mcmc.Point{}
	}
	return p.Scale(-(n - r.Radius) / (r.Width * r.Width * n))
}

func (r *Ring) MarginalX(x float64) float64 {
	return marginalX(r.Density, r.bounds, x)
}

func (r *Ring) MarginalY(y float64) float64 {
	return marginalY(r.Density, r.bounds, y)
}

func (r *Ring) Bounds() mcmc.Bounds { return r.bounds }
