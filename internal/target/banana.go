package target

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// Banana is the curved density obtained by warping a Gaussian along a
// parabola, a standard hard case for isotropic proposals.
type Banana struct {
	SigmaX float64
	SigmaY float64
	Curve  float64

	bounds mcmc.Bounds
}

func NewBanana() *Banana {
	return &Banana{
		SigmaX: 1.0,
		SigmaY: 0.4,
		Curve:  0.5,
		bounds: mcmc.Bounds{XMin: -3.5, XMax: 3.5, YMin: -2.5, YMax: 4.5},
	}
}

// warp maps p into the frame where the density is an axis-aligned
// Gaussian: v = y - curve*(x^2 - sigmaX^2).
func (b *Banana) warp(p mcmc.Point) float64 {
	return p.Y - b.Curve*(p.X*p.X-b.SigmaX*b.SigmaX)
}

func (b *Banana) Density(p mcmc.Point) float64 {
	v := b.warp(p)
	return math.Exp(-0.5*p.X*p.X/(b.SigmaX*b.SigmaX) - 0.5*v*v/(b.SigmaY*b.SigmaY))
}

func (b *Banana) LogDensity(p mcmc.Point) float64 {
	return logDensity(b.Density, p)
}

func (b *Banana) Gradient(p mcmc.Point) mcmc.Point {
	v := b.warp(p)
	sy2 := b.SigmaY * b.SigmaY
	return mcmc.Point{
		X: -p.X/(b.SigmaX*b.SigmaX) + 2*b.Curve*p.X*v/sy2,
		Y: -v / sy2,
	}
}

func (b *Banana) MarginalX(x float64) float64 {
	return marginalX(b.Density, b.bounds, x)
}

func (b *Banana) MarginalY(y float64) float64 {
	return marginalY(b.Density, b.bounds, y)
}

func (b *Banana) Bounds() mcmc.Bounds { return b.bounds }
