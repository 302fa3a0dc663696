package sampler

import "github.com/san-kum/mcmclab/internal/mcmc"

// leapfrog advances one symplectic step of size eps for the Hamiltonian
// H(q,p) = U(q) + K(p) with U = -logDensity and K = |p|^2/2. The
// gradient of the log-density is the negated gradient of U, so momentum
// half-steps add eps/2 * gradient directly.
func leapfrog(t mcmc.Target, q, p mcmc.Point, eps float64) (mcmc.Point, mcmc.Point) {
	p = p.Add(t.Gradient(q).Scale(eps / 2))
	q = q.Add(p.Scale(eps))
	p = p.Add(t.Gradient(q).Scale(eps / 2))
	return q, p
}

func hamiltonian(t mcmc.Target, q, p mcmc.Point) float64 {
	return -t.LogDensity(q) + 0.5*p.Dot(p)
}
