package sampler

import (
	"fmt"
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const defaultSigma = 0.5

// RandomWalk is the random-walk Metropolis-Hastings sampler. Proposals
// are isotropic Gaussian perturbations of scale Sigma around the
// current point.
type RandomWalk struct {
	base
	Sigma float64
}

func NewRandomWalk() *RandomWalk {
	return &RandomWalk{base: newBase(), Sigma: defaultSigma}
}

func (s *RandomWalk) Name() string { return "rwmh" }

func (s *RandomWalk) Init() { s.Sigma = defaultSigma }

// Step proposes x' = x + sigma*N(0,I) and accepts with probability
// min(1, density(x')/density(x)). The chain grows by one entry either
// way, so sample count always equals step count.
func (s *RandomWalk) Step(sink *mcmc.Sink) {
	x := s.current()
	prop := x.Add(s.normal(s.Sigma))

	sink.Push(mcmc.ProposalEvent{From: x, To: prop, Radius: s.Sigma})

	logAlpha := s.target.LogDensity(prop) - s.target.LogDensity(x)
	s.steps++

	if math.Log(s.rng.Float64()) < logAlpha {
		s.accepted++
		s.push(prop)
		sink.Push(mcmc.AcceptEvent{Pos: prop})
		return
	}
	s.push(x)
	sink.Push(mcmc.RejectEvent{Pos: prop})
}

func (s *RandomWalk) AcceptanceRate() float64 { return s.rate() }

func (s *RandomWalk) Params() map[string]float64 {
	return map[string]float64{"sigma": s.Sigma}
}

func (s *RandomWalk) SetParam(name string, value float64) error {
	if name != "sigma" {
		return fmt.Errorf("%w: %s", mcmc.ErrUnknownParam, name)
	}
	s.Sigma = value
	return nil
}
