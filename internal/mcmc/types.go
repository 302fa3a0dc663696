package mcmc

import "math"

// LogEpsilon keeps LogDensity finite where the density is exactly zero.
const LogEpsilon = 1e-10

// Point is an immutable 2-D coordinate. Value type, no identity.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds is the rectangular support used to scale proposals and
// integrate marginals.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Center returns the midpoint of the bound rectangle.
func (b Bounds) Center() Point {
	return Point{(b.XMin + b.XMax) / 2, (b.YMin + b.YMax) / 2}
}

// Target is the contract a distribution must satisfy to plug into every
// sampler unmodified. Density must be finite and non-negative
// everywhere inside Bounds.
type Target interface {
	Density(p Point) float64
	LogDensity(p Point) float64
	Gradient(p Point) Point
	MarginalX(x float64) float64
	MarginalY(y float64) float64
	Bounds() Bounds
}

// Sampler is one MCMC algorithm bound to a target. A sampler owns its
// chain; Step performs exactly one unit of work and pushes the events
// describing it onto the sink.
type Sampler interface {
	Name() string
	SetTarget(t Target)
	Init()
	Reset(start Point)
	Step(sink *Sink)
	Chain() []Point
}

// AcceptanceTracker is implemented by Metropolis-family samplers that
// keep accept/step counts. Gibbs does not implement it.
type AcceptanceTracker interface {
	AcceptanceRate() float64
}

// Configurable allows runtime parameter adjustment. Changes apply to
// the next Step, never retroactively.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Seedable samplers own their random source and can be reseeded for
// reproducible runs.
type Seedable interface {
	Seed(seed int64)
}
