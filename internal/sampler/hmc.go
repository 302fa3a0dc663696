package sampler

import (
	"fmt"
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const (
	defaultHMCEps      = 0.1
	defaultHMCLeapfrog = 20
)

// HMC is Hamiltonian Monte Carlo: fresh momentum each step, L leapfrog
// steps of size Eps, Metropolis correction on the Hamiltonian error.
type HMC struct {
	base
	Eps      float64
	Leapfrog int
}

func NewHMC() *HMC {
	return &HMC{base: newBase(), Eps: defaultHMCEps, Leapfrog: defaultHMCLeapfrog}
}

func (s *HMC) Name() string { return "hmc" }

func (s *HMC) Init() {
	s.Eps = defaultHMCEps
	s.Leapfrog = defaultHMCLeapfrog
}

func (s *HMC) Step(sink *mcmc.Sink) {
	q := s.current()
	p := s.normal(1)
	h0 := hamiltonian(s.target, q, p)

	path := make([]mcmc.Point, 0, s.Leapfrog+1)
	path = append(path, q)

	qNew, pNew := q, p
	for i := 0; i < s.Leapfrog; i++ {
		qNew, pNew = leapfrog(s.target, qNew, pNew, s.Eps)
		path = append(path, qNew)
	}

	// Negated final momentum: the reversed trajectory retraces the
	// path, which is what the trajectory overlay displays.
	sink.Push(mcmc.TrajectoryEvent{Path: path, Momentum: pNew.Scale(-1), HasMomentum: true})
	sink.Push(mcmc.ProposalEvent{From: q, To: qNew})

	h1 := hamiltonian(s.target, qNew, pNew)
	s.steps++

	if !math.IsNaN(h1) && !math.IsInf(h1, 0) && math.Log(s.rng.Float64()) < h0-h1 {
		s.accepted++
		s.push(qNew)
		sink.Push(mcmc.AcceptEvent{Pos: qNew})
		return
	}
	s.push(q)
	sink.Push(mcmc.RejectEvent{Pos: qNew})
}

func (s *HMC) AcceptanceRate() float64 { return s.rate() }

func (s *HMC) Params() map[string]float64 {
	return map[string]float64{"eps": s.Eps, "leapfrog": float64(s.Leapfrog)}
}

func (s *HMC) SetParam(name string, value float64) error {
	switch name {
	case "eps":
		s.Eps = value
	case "leapfrog":
		if value < 1 {
			value = 1
		}
		s.Leapfrog = int(value)
	default:
		return fmt.Errorf("%w: %s", mcmc.ErrUnknownParam, name)
	}
	return nil
}
