package sampler

import (
	"math/rand"
	"time"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// base carries the state shared by every sampler: the bound target, the
// append-only chain, a private random source, and acceptance counters.
type base struct {
	target   mcmc.Target
	chain    []mcmc.Point
	rng      *rand.Rand
	accepted int
	steps    int
}

func newBase() base {
	return base{
		chain: []mcmc.Point{{}},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *base) SetTarget(t mcmc.Target) { b.target = t }

// Reset replaces the chain with a single-element chain holding start
// and clears acceptance counters. The chain is freshly allocated so
// slices handed out by Chain before the reset keep their contents.
func (b *base) Reset(start mcmc.Point) {
	b.chain = []mcmc.Point{start}
	b.accepted = 0
	b.steps = 0
}

func (b *base) Chain() []mcmc.Point { return b.chain }

func (b *base) Seed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// rate backs AcceptanceRate on the Metropolis-family samplers. Gibbs
// has no accept/reject concept and does not expose it.
func (b *base) rate() float64 {
	if b.steps == 0 {
		return 0
	}
	return float64(b.accepted) / float64(b.steps)
}

func (b *base) current() mcmc.Point {
	return b.chain[len(b.chain)-1]
}

func (b *base) push(p mcmc.Point) {
	b.chain = append(b.chain, p)
}

// normal draws a 2-D standard normal scaled by sigma.
func (b *base) normal(sigma float64) mcmc.Point {
	return mcmc.Point{
		X: b.rng.NormFloat64() * sigma,
		Y: b.rng.NormFloat64() * sigma,
	}
}
