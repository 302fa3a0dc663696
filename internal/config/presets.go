package config

var Presets = map[string]map[string]*Config{
	"rwmh": {
		"coarse": {
			Sampler: "rwmh", Target: "gaussian", Steps: 2000,
			Params: ParamsConfig{Sigma: 1.5},
		},
		"fine": {
			Sampler: "rwmh", Target: "gaussian", Steps: 5000,
			Params: ParamsConfig{Sigma: 0.2},
		},
		"bimodal": {
			Sampler: "rwmh", Target: "mixture", Steps: 5000,
			Params: ParamsConfig{Sigma: 0.8},
		},
	},
	"hmc": {
		"short": {
			Sampler: "hmc", Target: "gaussian", Steps: 1000,
			Params: ParamsConfig{Eps: 0.1, Leapfrog: 10},
		},
		"long": {
			Sampler: "hmc", Target: "banana", Steps: 2000,
			Params: ParamsConfig{Eps: 0.05, Leapfrog: 40},
		},
	},
	"nuts": {
		"default": {
			Sampler: "nuts", Target: "banana", Steps: 1000,
			Params: ParamsConfig{Eps: 0.1, MaxDepth: 10, DeltaMax: 1000},
		},
		"shallow": {
			Sampler: "nuts", Target: "gaussian", Steps: 2000,
			Params: ParamsConfig{Eps: 0.2, MaxDepth: 5, DeltaMax: 1000},
		},
	},
	"mala": {
		"default": {
			Sampler: "mala", Target: "gaussian", Steps: 2000,
			Params: ParamsConfig{Eps: 0.05},
		},
		"ring": {
			Sampler: "mala", Target: "ring", Steps: 3000,
			Params: ParamsConfig{Eps: 0.02},
		},
	},
	"gibbs": {
		"default": {
			Sampler: "gibbs", Target: "mixture", Steps: 1000,
			Params: ParamsConfig{Grid: 100},
		},
		"coarse": {
			Sampler: "gibbs", Target: "gaussian", Steps: 1000,
			Params: ParamsConfig{Grid: 25},
		},
	},
}

func GetPreset(sampler, name string) *Config {
	group, ok := Presets[sampler]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(sampler string) []string {
	group, ok := Presets[sampler]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
