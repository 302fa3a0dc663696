package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mcmclab/internal/sampler"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sampler != "rwmh" {
		t.Errorf("expected sampler rwmh, got %s", cfg.Sampler)
	}
	if cfg.Target != "gaussian" {
		t.Errorf("expected target gaussian, got %s", cfg.Target)
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Trail <= 0 {
		t.Error("trail capacity should be positive")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("sampler: hmc\ntarget: banana\nsteps: 500\nparams:\n  eps: 0.02\n  leapfrog: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Sampler != "hmc" || cfg.Target != "banana" || cfg.Steps != 500 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Params.Eps != 0.02 || cfg.Params.Leapfrog != 30 {
		t.Errorf("params not loaded: %+v", cfg.Params)
	}
	// Untouched fields keep defaults.
	if cfg.Params.Grid != DefaultGrid {
		t.Errorf("grid should keep default, got %d", cfg.Params.Grid)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.Sampler = "nuts"
	cfg.Seed = 1234
	cfg.Start.X = 0.5

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Sampler != "nuts" || loaded.Seed != 1234 || loaded.Start.X != 0.5 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rwmh", "coarse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Sigma != 1.5 {
		t.Errorf("expected sigma 1.5, got %f", cfg.Params.Sigma)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("rwmh", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "coarse"); cfg != nil {
		t.Error("expected nil for nonexistent sampler")
	}
}

func TestListPresets(t *testing.T) {
	for _, name := range []string{"rwmh", "hmc", "nuts", "mala", "gibbs"} {
		if len(ListPresets(name)) == 0 {
			t.Errorf("expected presets for %s", name)
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent sampler")
	}
}

func TestApplyParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Sigma = 2.5

	s := sampler.NewRandomWalk()
	cfg.Apply(s)

	if s.Sigma != 2.5 {
		t.Errorf("sigma not applied: %f", s.Sigma)
	}
}

func TestApplySkipsForeignParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Sigma = 9.9
	cfg.Params.Eps = 0.01

	s := sampler.NewHMC()
	cfg.Apply(s)

	if s.Eps != 0.01 {
		t.Errorf("eps not applied: %f", s.Eps)
	}
	// sigma belongs to rwmh only; hmc must ignore it.
	if _, ok := s.Params()["sigma"]; ok {
		t.Error("hmc must not grow a sigma parameter")
	}
}
