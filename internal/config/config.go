package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

const (
	DefaultSteps    = 1000
	DefaultTrail    = 40
	DefaultSigma    = 0.5
	DefaultEps      = 0.1
	DefaultLeapfrog = 20
	DefaultMaxDepth = 10
	DefaultDeltaMax = 1000.0
	DefaultGrid     = 100
)

type Config struct {
	Sampler string       `yaml:"sampler"`
	Target  string       `yaml:"target"`
	Steps   int          `yaml:"steps"`
	Seed    int64        `yaml:"seed"`
	Trail   int          `yaml:"trail"`
	Start   StartConfig  `yaml:"start"`
	Params  ParamsConfig `yaml:"params"`
}

type StartConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParamsConfig holds the union of per-sampler tuning parameters; each
// sampler reads only the fields it understands.
type ParamsConfig struct {
	Sigma    float64 `yaml:"sigma"`
	Eps      float64 `yaml:"eps"`
	Leapfrog int     `yaml:"leapfrog"`
	MaxDepth int     `yaml:"max_depth"`
	DeltaMax float64 `yaml:"delta_max"`
	Grid     int     `yaml:"grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Sampler: "rwmh",
		Target:  "gaussian",
		Steps:   DefaultSteps,
		Trail:   DefaultTrail,
		Params: ParamsConfig{
			Sigma:    DefaultSigma,
			Eps:      DefaultEps,
			Leapfrog: DefaultLeapfrog,
			MaxDepth: DefaultMaxDepth,
			DeltaMax: DefaultDeltaMax,
			Grid:     DefaultGrid,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) StartPoint() mcmc.Point {
	return mcmc.Point{X: c.Start.X, Y: c.Start.Y}
}

// Apply pushes the configured parameters onto a sampler. Each sampler
// accepts only its own parameter names; zero values are skipped so a
// partial config keeps sampler defaults.
func (c *Config) Apply(s mcmc.Sampler) {
	t, ok := s.(mcmc.Configurable)
	if !ok {
		return
	}
	values := map[string]float64{
		"sigma":     c.Params.Sigma,
		"eps":       c.Params.Eps,
		"leapfrog":  float64(c.Params.Leapfrog),
		"max_depth": float64(c.Params.MaxDepth),
		"delta_max": c.Params.DeltaMax,
		"grid":      float64(c.Params.Grid),
	}
	for name := range t.Params() {
		if v, found := values[name]; found && v != 0 {
			t.SetParam(name, v)
		}
	}
}
