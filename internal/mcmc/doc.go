// Package mcmc provides core primitives for Markov chain Monte Carlo
// sampling over two-dimensional target densities:
//
//   - [Point]: immutable 2-D coordinate
//   - [Target]: interface for unnormalized target densities
//   - [Sampler]: interface implemented by each MCMC algorithm
//   - [Event]: tagged per-step algorithm events (proposals, accepts,
//     trajectories)
//   - [Sink]: event queue plus fold into a coherent snapshot
//
// # Example
//
//	t := target.NewGaussian()
//	s := sampler.NewRandomWalk()
//	s.SetTarget(t)
//	sink := mcmc.NewSink(40)
//	s.Step(sink)
//	sink.FoldAll()
//
// # Thread Safety
//
// Samplers and sinks are NOT thread-safe. Stepping is strictly
// sequential; one Step call runs to completion before the next begins.
package mcmc
