package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Qfactor.Profile != "parabolic" {
		t.Errorf("unexpected default qfactor profile: %s", cfg.Qfactor.Profile)
	}
	if cfg.Method1D != "cubic" || cfg.Method2D != "bicubic" {
		t.Errorf("unexpected default methods: %s, %s", cfg.Method1D, cfg.Method2D)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eq.yaml")

	cfg := DefaultConfig()
	cfg.Qfactor.Q0 = 0.9
	cfg.Bfield = "numerical"
	cfg.Dataset = "eq.nc"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Qfactor.Q0 != 0.9 {
		t.Errorf("q0 = %g, want 0.9", loaded.Qfactor.Q0)
	}
	if loaded.Bfield != "numerical" || loaded.Dataset != "eq.nc" {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("bfield: lar\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Qfactor.Profile != "parabolic" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Qfactor.Profile = "spiral"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown qfactor profile")
	}

	cfg = DefaultConfig()
	cfg.Current = "numerical"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for numerical profile without dataset")
	}
	cfg.Dataset = "eq.nc"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
