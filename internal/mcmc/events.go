package mcmc

// Event is a closed tagged variant describing one piece of a sampling
// step. Events are transient: once folded by a Sink they are discarded.
type Event interface {
	event()
}

// ProposalEvent announces a candidate move from From to To. Radius is
// the proposal scale (0 when the sampler has no meaningful radius).
type ProposalEvent struct {
	From, To Point
	Radius   float64
}

// AcceptEvent records an accepted move to Pos.
type AcceptEvent struct {
	Pos Point
}

// RejectEvent records a rejected candidate at Pos.
type RejectEvent struct {
	Pos Point
}

// TrajectoryEvent carries a full integrator path. Momentum is the
// (negated) final momentum when HasMomentum is set.
type TrajectoryEvent struct {
	Path        []Point
	Momentum    Point
	HasMomentum bool
}

// GradientEvent carries a gradient arrow at Pos.
type GradientEvent struct {
	Pos, Dir Point
}

// LangevinEvent decomposes a MALA proposal into deterministic drift and
// stochastic noise.
type LangevinEvent struct {
	Gradient    Point
	Drift       Point
	NoiseRadius float64
}

func (ProposalEvent) event()   {}
func (AcceptEvent) event()     {}
func (RejectEvent) event()     {}
func (TrajectoryEvent) event() {}
func (GradientEvent) event()   {}
func (LangevinEvent) event()   {}
