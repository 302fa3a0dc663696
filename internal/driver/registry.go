package driver

import (
	"fmt"
	"sort"

	"github.com/san-kum/mcmclab/internal/mcmc"
	"github.com/san-kum/mcmclab/internal/sampler"
	"github.com/san-kum/mcmclab/internal/target"
)

// Registry maps algorithm and target keys to constructors. Unknown keys
// are a caller configuration error and fail immediately.
type Registry struct {
	samplers map[string]func() mcmc.Sampler
	targets  map[string]func() mcmc.Target
}

func NewRegistry() *Registry {
	r := &Registry{
		samplers: make(map[string]func() mcmc.Sampler),
		targets:  make(map[string]func() mcmc.Target),
	}

	r.samplers["rwmh"] = func() mcmc.Sampler { return sampler.NewRandomWalk() }
	r.samplers["hmc"] = func() mcmc.Sampler { return sampler.NewHMC() }
	r.samplers["nuts"] = func() mcmc.Sampler { return sampler.NewNUTS() }
	r.samplers["mala"] = func() mcmc.Sampler { return sampler.NewMALA() }
	r.samplers["gibbs"] = func() mcmc.Sampler { return sampler.NewGibbs() }

	r.targets["gaussian"] = func() mcmc.Target { return target.NewGaussian() }
	r.targets["mixture"] = func() mcmc.Target { return target.NewMixture() }
	r.targets["ring"] = func() mcmc.Target { return target.NewRing() }
	r.targets["banana"] = func() mcmc.Target { return target.NewBanana() }

	return r
}

func (r *Registry) GetSampler(name string) (mcmc.Sampler, error) {
	fn, ok := r.samplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", mcmc.ErrUnknownSampler, name)
	}
	return fn(), nil
}

func (r *Registry) GetTarget(name string) (mcmc.Target, error) {
	fn, ok := r.targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", mcmc.ErrUnknownTarget, name)
	}
	return fn(), nil
}

func (r *Registry) ListSamplers() []string {
	names := make([]string, 0, len(r.samplers))
	for name := range r.samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListTargets() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
