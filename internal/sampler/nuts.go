package sampler

import (
	"fmt"
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const (
	defaultNUTSEps      = 0.1
	defaultNUTSMaxDepth = 10
	defaultNUTSDeltaMax = 1000.0
)

// NUTS is the No-U-Turn sampler. It replaces HMC's fixed trajectory
// length with a binary tree of leapfrog states doubled in a random time
// direction until the trajectory turns back on itself or MaxDepth is
// reached. The Metropolis correction is embedded in the slice test
// inside the tree build, so every step pushes to the chain
// unconditionally.
type NUTS struct {
	base
	Eps      float64
	MaxDepth int
	DeltaMax float64
}

func NewNUTS() *NUTS {
	return &NUTS{
		base:     newBase(),
		Eps:      defaultNUTSEps,
		MaxDepth: defaultNUTSMaxDepth,
		DeltaMax: defaultNUTSDeltaMax,
	}
}

func (s *NUTS) Name() string { return "nuts" }

func (s *NUTS) Init() {
	s.Eps = defaultNUTSEps
	s.MaxDepth = defaultNUTSMaxDepth
	s.DeltaMax = defaultNUTSDeltaMax
}

// tree is the state propagated out of a recursive build: the leftmost
// and rightmost boundary states, the proposal selected from the
// subtree, the count of slice-valid points, and the continue flag.
type tree struct {
	qMinus, pMinus mcmc.Point
	qPlus, pPlus   mcmc.Point
	proposal       mcmc.Point
	n              int
	ok             bool
}

func (s *NUTS) Step(sink *mcmc.Sink) {
	q := s.current()
	p := s.normal(1)
	h0 := hamiltonian(s.target, q, p)

	// Slice variable in log space: u ~ Uniform(0, exp(-H0)) becomes
	// logU = log(Uniform(0,1)) relative to H0.
	logU := math.Log(s.rng.Float64())

	qMinus, pMinus := q, p
	qPlus, pPlus := q, p
	proposal := q
	n := 1
	ok := true

	for depth := 0; ok && depth < s.MaxDepth; depth++ {
		var sub tree
		if s.rng.Float64() < 0.5 {
			sub = s.buildTree(qMinus, pMinus, logU, -1, depth, h0)
			qMinus, pMinus = sub.qMinus, sub.pMinus
		} else {
			sub = s.buildTree(qPlus, pPlus, logU, 1, depth, h0)
			qPlus, pPlus = sub.qPlus, sub.pPlus
		}

		if sub.ok && n+sub.n > 0 && s.rng.Float64() < float64(sub.n)/float64(n+sub.n) {
			proposal = sub.proposal
		}
		n += sub.n
		ok = sub.ok && noUTurn(qMinus, qPlus, pMinus, pPlus)
	}

	sink.Push(mcmc.ProposalEvent{From: q, To: proposal})

	s.steps++
	s.push(proposal)

	// The slice test already applied the Metropolis correction; the
	// reject event exists only for display parity when the tree never
	// moved off the starting point.
	if proposal == q {
		sink.Push(mcmc.RejectEvent{Pos: proposal})
		return
	}
	s.accepted++
	sink.Push(mcmc.AcceptEvent{Pos: proposal})
}

// buildTree grows a balanced subtree of 2^depth leapfrog states in time
// direction v (+1/-1).
func (s *NUTS) buildTree(q, p mcmc.Point, logU float64, v, depth int, h0 float64) tree {
	if depth == 0 {
		qNew, pNew := leapfrog(s.target, q, p, float64(v)*s.Eps)
		h := hamiltonian(s.target, qNew, pNew)

		n := 0
		if logU <= h0-h {
			n = 1
		}
		// Divergence check: the simulation has exploded when the
		// Hamiltonian error exceeds DeltaMax.
		ok := h-h0 < s.DeltaMax

		return tree{
			qMinus: qNew, pMinus: pNew,
			qPlus: qNew, pPlus: pNew,
			proposal: qNew,
			n:        n,
			ok:       ok,
		}
	}

	left := s.buildTree(q, p, logU, v, depth-1, h0)
	if !left.ok {
		return left
	}

	var right tree
	if v == -1 {
		right = s.buildTree(left.qMinus, left.pMinus, logU, v, depth-1, h0)
		left.qMinus, left.pMinus = right.qMinus, right.pMinus
	} else {
		right = s.buildTree(left.qPlus, left.pPlus, logU, v, depth-1, h0)
		left.qPlus, left.pPlus = right.qPlus, right.pPlus
	}

	if total := left.n + right.n; total > 0 && s.rng.Float64() < float64(right.n)/float64(total) {
		left.proposal = right.proposal
	}
	left.n += right.n
	left.ok = right.ok && noUTurn(left.qMinus, left.qPlus, left.pMinus, left.pPlus)

	return left
}

// noUTurn reports whether the trajectory spanned by the boundary states
// is still expanding: both boundary momenta must have a non-negative
// component along the span vector.
func noUTurn(qMinus, qPlus, pMinus, pPlus mcmc.Point) bool {
	span := qPlus.Sub(qMinus)
	return span.Dot(pMinus) >= 0 && span.Dot(pPlus) >= 0
}

func (s *NUTS) AcceptanceRate() float64 { return s.rate() }

func (s *NUTS) Params() map[string]float64 {
	return map[string]float64{
		"eps":       s.Eps,
		"max_depth": float64(s.MaxDepth),
		"delta_max": s.DeltaMax,
	}
}

func (s *NUTS) SetParam(name string, value float64) error {
	switch name {
	case "eps":
		s.Eps = value
	case "max_depth":
		if value < 1 {
			value = 1
		}
		s.MaxDepth = int(value)
	case "delta_max":
		s.DeltaMax = value
	default:
		return fmt.Errorf("%w: %s", mcmc.ErrUnknownParam, name)
	}
	return nil
}
