package target

import "github.com/san-kum/mcmclab/internal/mcmc"

// Custom wraps an arbitrary non-negative density function. The
// gradient falls back to the centered finite difference of the
// log-density; callers with an analytic form should implement
// mcmc.Target directly instead.
type Custom struct {
	name    string
	density func(mcmc.Point) float64
	bounds  mcmc.Bounds
}

func NewCustom(name string, density func(mcmc.Point) float64, bounds mcmc.Bounds) *Custom {
	return &Custom{name: name, density: density, bounds: bounds}
}

func (c *Custom) Name() string { return c.name }

func (c *Custom) Density(p mcmc.Point) float64 {
	return c.density(p)
}

func (c *Custom) LogDensity(p mcmc.Point) float64 {
	return logDensity(c.density, p)
}

func (c *Custom) Gradient(p mcmc.Point) mcmc.Point {
	return fdGradient(c.density, p, gradStep)
}

func (c *Custom) MarginalX(x float64) float64 {
	return marginalX(c.density, c.bounds, x)
}

func (c *Custom) MarginalY(y float64) float64 {
	return marginalY(c.density, c.bounds, y)
}

func (c *Custom) Bounds() mcmc.Bounds { return c.bounds }
