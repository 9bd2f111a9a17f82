package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"potts-mc/internal/sims/potts"
)

// Version is the only supported config file version.
const Version = "1.0"

// EnvPrefix prefixes environment overrides, e.g. POTTS_Q=5.
const EnvPrefix = "POTTS_"

// File represents a potts.yml document.
type File struct {
	Version    string       `yaml:"version"`
	Simulation potts.Config `yaml:"simulation"`
	Output     Output       `yaml:"output"`
}

// Output selects the artifacts written after a run.
type Output struct {
	Dir          string `yaml:"dir"`
	Plots        bool   `yaml:"plots"`
	Heatmaps     bool   `yaml:"heatmaps"`
	HeatmapScale int    `yaml:"heatmap_scale"`
	PrintLattice bool   `yaml:"print_lattice"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Version:    Version,
		Simulation: potts.DefaultConfig(),
		Output: Output{
			Dir:          "out",
			Plots:        true,
			Heatmaps:     true,
			HeatmapScale: 8,
			PrintLattice: true,
		},
	}
}

// Load reads, parses and validates the config at path. Fields missing from
// the file keep their defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate performs strict validation on the configuration.
func (f *File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("unsupported version: %s (expected: %s)", f.Version, Version)
	}
	if err := f.Simulation.Validate(); err != nil {
		return err
	}
	if f.Output.HeatmapScale < 1 {
		return fmt.Errorf("output.heatmap_scale must be at least 1, got %d", f.Output.HeatmapScale)
	}
	if (f.Output.Plots || f.Output.Heatmaps) && f.Output.Dir == "" {
		return errors.New("output.dir is required when plots or heatmaps are enabled")
	}
	return nil
}

// ApplyEnv overrides simulation parameters from POTTS_* variables found by
// lookup, using the flag-style keys of potts.Config.Set.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	kv := map[string]string{}
	for _, key := range potts.Keys {
		name := EnvPrefix + strings.ToUpper(key)
		if v, ok := lookup(name); ok && v != "" {
			kv[key] = v
		}
	}
	if err := f.Simulation.ApplyMap(kv); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
