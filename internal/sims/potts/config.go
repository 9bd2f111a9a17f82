package potts

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// BoltzmannSI is the Boltzmann constant in J/K, used as the default k.
const BoltzmannSI = 1.38e-23

// Config holds the parameters of a Potts run. It is immutable for the
// duration of a run.
type Config struct {
	Size        int     `yaml:"n"`
	States      int     `yaml:"q"`
	Temperature float64 `yaml:"temperature"`
	Coupling    float64 `yaml:"coupling"`
	Boltzmann   float64 `yaml:"boltzmann"`
	Steps       int     `yaml:"steps"`
	Seed        int64   `yaml:"seed"`

	// Incremental maintains the Hamiltonian from per-move changes instead of
	// rescanning the lattice every step. The recorded energies are identical.
	Incremental bool `yaml:"incremental"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:        10,
		States:      2,
		Temperature: 2.0,
		Coupling:    1.0,
		Boltzmann:   BoltzmannSI,
		Steps:       1000,
		Seed:        42,
	}
}

// Keys lists the flag-style keys understood by Set, FromMap and ApplyMap.
var Keys = []string{"n", "q", "t", "j", "k", "steps", "seed", "incremental"}

// Set parses value and stores it under the flag-style key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "n":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("n: %w", err)
		}
		c.Size = v
	case "q":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("q: %w", err)
		}
		c.States = v
	case "t":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("t: %w", err)
		}
		c.Temperature = v
	case "j":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("j: %w", err)
		}
		c.Coupling = v
	case "k":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("k: %w", err)
		}
		c.Boltzmann = v
	case "steps":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		c.Steps = v
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		c.Seed = v
	case "incremental":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("incremental: %w", err)
		}
		c.Incremental = v
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, value := range cfg {
		next := c
		if err := next.Set(key, value); err == nil {
			c = next
		}
	}
	return c
}

// ApplyMap applies every pair in kv, in key order, and stops at the first
// unknown key or unparsable value.
func (c *Config) ApplyMap(kv map[string]string) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.Set(k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports the first configuration violation.
func (c Config) Validate() error {
	if c.States < 1 {
		return fmt.Errorf("%w: q=%d", ErrInvalidStates, c.States)
	}
	if c.Size < 1 {
		return fmt.Errorf("%w: n=%d", ErrInvalidSize, c.Size)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps=%d", ErrInvalidSteps, c.Steps)
	}
	if !(c.Temperature > 0) || math.IsInf(c.Temperature, 0) {
		return fmt.Errorf("%w: T=%g", ErrInvalidTemperature, c.Temperature)
	}
	if !(c.Boltzmann > 0) || math.IsInf(c.Boltzmann, 0) {
		return fmt.Errorf("%w: k=%g", ErrInvalidTemperature, c.Boltzmann)
	}
	if c.Boltzmann*c.Temperature == 0 {
		return fmt.Errorf("%w: k*T underflows for k=%g T=%g", ErrInvalidTemperature, c.Boltzmann, c.Temperature)
	}
	if math.IsNaN(c.Coupling) || math.IsInf(c.Coupling, 0) {
		return fmt.Errorf("potts: coupling must be finite, got %g", c.Coupling)
	}
	return nil
}
