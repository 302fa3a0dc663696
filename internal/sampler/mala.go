package sampler

import (
	"fmt"
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const defaultMALAEps = 0.05

// MALA is the Metropolis-adjusted Langevin algorithm: the proposal
// drifts along the gradient of the log-density before adding Gaussian
// noise, and the asymmetric proposal requires the full
// Metropolis-Hastings correction.
type MALA struct {
	base
	Eps float64
}

func NewMALA() *MALA {
	return &MALA{base: newBase(), Eps: defaultMALAEps}
}

func (s *MALA) Name() string { return "mala" }

func (s *MALA) Init() { s.Eps = defaultMALAEps }

// drift is the proposal mean mu(q) = q + (eps/2) * grad log density(q).
func (s *MALA) drift(q mcmc.Point) mcmc.Point {
	return q.Add(s.target.Gradient(q).Scale(s.Eps / 2))
}

// logQ is the log transition density log q(to|from) up to the
// normalization constant, which cancels in the acceptance ratio.
func (s *MALA) logQ(to, from mcmc.Point) float64 {
	d := to.Sub(s.drift(from))
	return -d.Dot(d) / (2 * s.Eps)
}

func (s *MALA) Step(sink *mcmc.Sink) {
	q := s.current()
	grad := s.target.Gradient(q)
	mu := s.drift(q)
	noise := math.Sqrt(s.Eps)

	sink.Push(mcmc.LangevinEvent{Gradient: grad, Drift: mu, NoiseRadius: noise})

	prop := mu.Add(s.normal(noise))
	sink.Push(mcmc.ProposalEvent{From: q, To: prop, Radius: noise})

	logAlpha := s.target.LogDensity(prop) - s.target.LogDensity(q) +
		s.logQ(q, prop) - s.logQ(prop, q)

	s.steps++

	propLog := s.target.LogDensity(prop)
	if !math.IsNaN(propLog) && !math.IsInf(propLog, 0) && math.Log(s.rng.Float64()) < logAlpha {
		s.accepted++
		s.push(prop)
		sink.Push(mcmc.AcceptEvent{Pos: prop})
		return
	}
	s.push(q)
	sink.Push(mcmc.RejectEvent{Pos: prop})
}

func (s *MALA) AcceptanceRate() float64 { return s.rate() }

func (s *MALA) Params() map[string]float64 {
	return map[string]float64{"eps": s.Eps}
}

func (s *MALA) SetParam(name string, value float64) error {
	if name != "eps" {
		return fmt.Errorf("%w: %s", mcmc.ErrUnknownParam, name)
	}
	s.Eps = value
	return nil
}
