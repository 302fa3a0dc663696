// Package sampler implements the MCMC algorithms.
//
// Each algorithm implements the [mcmc.Sampler] interface and owns its
// chain of accepted points:
//
//   - [RandomWalk]: random-walk Metropolis-Hastings
//   - [HMC]: Hamiltonian Monte Carlo with leapfrog integration
//   - [NUTS]: No-U-Turn sampler with recursive trajectory doubling
//   - [MALA]: Metropolis-adjusted Langevin
//   - [Gibbs]: coordinate-wise inverse-CDF Gibbs sampler
//
// All samplers also implement [mcmc.Configurable] for runtime parameter
// adjustment and [mcmc.Seedable] for reproducible runs. Parameter
// changes are read at the start of the next Step, never retroactively.
package sampler
