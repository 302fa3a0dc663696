package target

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const (
	// gradStep is the centered finite-difference step for the default
	// gradient of the log-density.
	gradStep = 1e-5

	// marginalSteps is the midpoint-rule resolution used to integrate
	// marginals across the orthogonal bound.
	marginalSteps = 100
)

type densityFn func(mcmc.Point) float64

func logDensity(f densityFn, p mcmc.Point) float64 {
	return math.Log(f(p) + mcmc.LogEpsilon)
}

// fdGradient approximates the gradient of ln(f+eps) with a centered
// difference of step h in each coordinate.
func fdGradient(f densityFn, p mcmc.Point, h float64) mcmc.Point {
	dx := logDensity(f, mcmc.Point{X: p.X + h, Y: p.Y}) - logDensity(f, mcmc.Point{X: p.X - h, Y: p.Y})
	dy := logDensity(f, mcmc.Point{X: p.X, Y: p.Y + h}) - logDensity(f, mcmc.Point{X: p.X, Y: p.Y - h})
	return mcmc.Point{X: dx / (2 * h), Y: dy / (2 * h)}
}

// marginalX integrates f over y across the bound at fixed x using the
// midpoint rule. The result is unnormalized but comparable across
// calls for the same distribution.
func marginalX(f densityFn, b mcmc.Bounds, x float64) float64 {
	dy := b.Height() / marginalSteps
	sum := 0.0
	for i := 0; i < marginalSteps; i++ {
		y := b.YMin + (float64(i)+0.5)*dy
		sum += f(mcmc.Point{X: x, Y: y})
	}
	return sum * dy
}

func marginalY(f densityFn, b mcmc.Bounds, y float64) float64 {
	dx := b.Width() / marginalSteps
	sum := 0.0
	for i := 0; i < marginalSteps; i++ {
		x := b.XMin + (float64(i)+0.5)*dx
		sum += f(mcmc.Point{X: x, Y: y})
	}
	return sum * dx
}
