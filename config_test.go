package signin

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"zero width", func(c *Config) { c.ViewportWidth = 0 }, false},
		{"negative height", func(c *Config) { c.ViewportHeight = -1 }, false},
		{"infinite height", func(c *Config) { c.ViewportHeight = math.Inf(1) }, false},
		{"NaN width", func(c *Config) { c.ViewportWidth = math.NaN() }, false},
		{"driver above 1", func(c *Config) { c.InitialDriver = 1.5 }, false},
		{"driver NaN", func(c *Config) { c.InitialDriver = math.NaN() }, false},
		{"driver 0", func(c *Config) { c.InitialDriver = 0 }, true},
		{"NaN duration", func(c *Config) { c.Duration = math.NaN() }, false},
		{"zero duration", func(c *Config) { c.Duration = 0 }, true},
		{"negative duration", func(c *Config) { c.Duration = -10 }, true},
		{"negative tap distance", func(c *Config) { c.MaxTapDistance = -1 }, false},
		{"nil easing", func(c *Config) { c.Easing = nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
