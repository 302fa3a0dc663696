package mcmc

import "errors"

// Domain errors for sampler configuration.
var (
	// ErrUnknownSampler indicates an algorithm key with no registered
	// constructor.
	ErrUnknownSampler = errors.New("mcmc: unknown sampler")

	// ErrUnknownTarget indicates a target key with no registered
	// constructor.
	ErrUnknownTarget = errors.New("mcmc: unknown target")

	// ErrUnknownParam indicates a SetParam name the sampler does not
	// expose.
	ErrUnknownParam = errors.New("mcmc: unknown parameter")

	// ErrNoTarget indicates a run attempted with no bound target.
	ErrNoTarget = errors.New("mcmc: sampler has no target")
)
