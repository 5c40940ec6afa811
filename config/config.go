package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/tuning"
	"gopkg.in/yaml.v3"
)

// Config holds the server and CLI defaults.
type Config struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// DefaultTuning is a preset name or six notes, low string first.
	DefaultTuning string `yaml:"default_tuning"`
	FretCount     int    `yaml:"fret_count"`

	tuning tuning.Tuning
}

func Default() *Config {
	return &Config{
		ListenAddr:     constants.DefaultListenAddr,
		AllowedOrigins: []string{"*"},
		DefaultTuning:  "Standard",
		FretCount:      constants.DefaultFretCount,
		tuning:         tuning.Standard,
	}
}

// Tuning is the parsed DefaultTuning.
func (c *Config) Tuning() tuning.Tuning {
	return c.tuning
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path, falling back to defaults when it does not exist.
// FRETDEX_ADDR overrides the listen address either way.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %v: %w", path, err)
	default:
		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", path, err)
		}
	}
	if addr := constants.GetListenAddr(); addr != "" {
		cfg.ListenAddr = addr
	}
	return cfg, nil
}

func (c *Config) validate() error {
	t, err := tuning.Parse(c.DefaultTuning)
	if err != nil {
		return fmt.Errorf("default_tuning: %w", err)
	}
	c.tuning = t
	if c.FretCount < 1 || c.FretCount > fretboard.MaxFrets {
		return fmt.Errorf("fret_count must be between 1 and %d, got %d", fretboard.MaxFrets, c.FretCount)
	}
	if c.ListenAddr == "" {
		c.ListenAddr = constants.DefaultListenAddr
	}
	return nil
}
