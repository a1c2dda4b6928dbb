// Package config describes an equilibrium setup loadable from yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultQ0      = 1.1
	DefaultQwall   = 3.9
	DefaultPsiWall = 0.125
)

type Config struct {
	Qfactor  QfactorConfig `yaml:"qfactor"`
	Bfield   string        `yaml:"bfield"`   // "lar" or "numerical"
	Current  string        `yaml:"current"`  // "lar" or "numerical"
	Efield   string        `yaml:"efield"`   // "none"
	Dataset  string        `yaml:"dataset"`  // path, numerical profiles only
	Method1D string        `yaml:"method1d"` // radial spline method
	Method2D string        `yaml:"method2d"` // field-surface spline method
}

type QfactorConfig struct {
	Profile string  `yaml:"profile"` // "unity", "parabolic" or "numerical"
	Q0      float64 `yaml:"q0"`
	Qwall   float64 `yaml:"qwall"`
	PsiWall float64 `yaml:"psi_wall"`
}

func DefaultConfig() *Config {
	return &Config{
		Qfactor: QfactorConfig{
			Profile: "parabolic",
			Q0:      DefaultQ0,
			Qwall:   DefaultQwall,
			PsiWall: DefaultPsiWall,
		},
		Bfield:   "lar",
		Current:  "lar",
		Efield:   "none",
		Method1D: "cubic",
		Method2D: "bicubic",
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

// Validate checks profile names and that numerical profiles have a dataset.
func (c *Config) Validate() error {
	switch c.Qfactor.Profile {
	case "unity", "parabolic", "numerical":
	default:
		return fmt.Errorf("unknown qfactor profile: %s", c.Qfactor.Profile)
	}
	switch c.Bfield {
	case "lar", "numerical":
	default:
		return fmt.Errorf("unknown bfield profile: %s", c.Bfield)
	}
	switch c.Current {
	case "lar", "numerical":
	default:
		return fmt.Errorf("unknown current profile: %s", c.Current)
	}
	if c.Efield != "none" {
		return fmt.Errorf("unknown efield profile: %s", c.Efield)
	}
	if c.NeedsDataset() && c.Dataset == "" {
		return fmt.Errorf("numerical profiles require a dataset path")
	}
	return nil
}

// NeedsDataset reports whether any configured profile is numerical.
func (c *Config) NeedsDataset() bool {
	return c.Qfactor.Profile == "numerical" || c.Bfield == "numerical" || c.Current == "numerical"
}
