// Package target provides built-in target distributions for sampling.
//
// Each distribution implements the [mcmc.Target] interface, supplying
// an unnormalized density over 2-D points together with its log-density,
// the gradient of the log-density, and numerically integrated marginals:
//
//   - [Gaussian]: isotropic normal
//   - [Mixture]: two-component Gaussian mixture (bimodal)
//   - [Ring]: donut-shaped density concentrated on a circle
//   - [Banana]: curved Rosenbrock-style density
//   - [Custom]: wraps an arbitrary density function
//
// Distributions with a closed-form gradient override the default
// centered finite difference of the log-density.
package target
