package potts

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Boltzmann != BoltzmannSI {
		t.Fatalf("default k = %g, want %g", cfg.Boltzmann, BoltzmannSI)
	}
}

func TestFromMapOverridesAndIgnoresGarbage(t *testing.T) {
	cfg := FromMap(map[string]string{
		"n":           "32",
		"q":           "5",
		"t":           "0.75",
		"j":           "-1.5",
		"k":           "1",
		"steps":       "12",
		"seed":        "99",
		"incremental": "true",
		"bogus":       "1",
	})
	if cfg.Size != 32 || cfg.States != 5 || cfg.Steps != 12 || cfg.Seed != 99 {
		t.Fatalf("integer overrides not applied: %+v", cfg)
	}
	if cfg.Temperature != 0.75 || cfg.Coupling != -1.5 || cfg.Boltzmann != 1 || !cfg.Incremental {
		t.Fatalf("float/bool overrides not applied: %+v", cfg)
	}

	cfg = FromMap(map[string]string{"n": "abc"})
	if cfg.Size != DefaultConfig().Size {
		t.Fatalf("unparsable value should keep default, got %d", cfg.Size)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestApplyMapIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyMap(map[string]string{"q": "x"}); err == nil {
		t.Fatal("expected parse error")
	}
	if err := cfg.ApplyMap(map[string]string{"nope": "1"}); err == nil {
		t.Fatal("expected unknown key error")
	}
	if err := cfg.ApplyMap(map[string]string{"q": "7", "n": "3"}); err != nil {
		t.Fatal(err)
	}
	if cfg.States != 7 || cfg.Size != 3 {
		t.Fatalf("ApplyMap did not apply values: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"q zero", func(c *Config) { c.States = 0 }, ErrInvalidStates},
		{"n zero", func(c *Config) { c.Size = 0 }, ErrInvalidSize},
		{"negative steps", func(c *Config) { c.Steps = -3 }, ErrInvalidSteps},
		{"zero T", func(c *Config) { c.Temperature = 0 }, ErrInvalidTemperature},
		{"negative T", func(c *Config) { c.Temperature = -1 }, ErrInvalidTemperature},
		{"NaN T", func(c *Config) { c.Temperature = math.NaN() }, ErrInvalidTemperature},
		{"zero k", func(c *Config) { c.Boltzmann = 0 }, ErrInvalidTemperature},
		{"underflowing kT", func(c *Config) { c.Boltzmann = 1e-300; c.Temperature = 1e-300 }, ErrInvalidTemperature},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	cfg := DefaultConfig()
	cfg.Coupling = math.Inf(1)
	if err := cfg.Validate(); err == nil {
		t.Fatal("infinite coupling accepted")
	}

	cfg = DefaultConfig()
	cfg.States = 1
	cfg.Steps = 0
	cfg.Coupling = -4
	if err := cfg.Validate(); err != nil {
		t.Fatalf("q=1, zero steps, negative J should be valid: %v", err)
	}
}

func TestSnapshotListsEveryKey(t *testing.T) {
	snap := DefaultConfig().Snapshot()
	for _, key := range Keys {
		if _, ok := snap.Lookup(key); !ok {
			t.Fatalf("snapshot missing %q", key)
		}
	}
	if p, _ := snap.Lookup("q"); p.Value != "2" {
		t.Fatalf("q rendered as %q", p.Value)
	}
}
