package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/OCharnyshevich/tilegen/pkg/gen"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// Config holds the settings of one tilegen run.
type Config struct {
	MapSize  int    `json:"map_size"` // chunks per side
	Seed     string `json:"seed"`     // text, 0x-prefixed hex, or empty for random
	OutDir   string `json:"out_dir"`
	LogLevel string `json:"log_level"`

	Generation *gen.Config `json:"generation"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MapSize:    8,
		OutDir:     "./out",
		LogLevel:   "info",
		Generation: gen.DefaultConfig(),
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["size"] {
		cfg.MapSize = fromFile.MapSize
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["out"] {
		cfg.OutDir = fromFile.OutDir
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if fromFile.Generation != nil {
		noise := cfg.Generation.NoiseSource
		gc := *fromFile.Generation
		cfg.Generation = &gc
		if explicitFlags["noise"] {
			cfg.Generation.NoiseSource = noise
		}
	}
}

// ResolveSeed turns the seed setting into generator state. A 0x prefix
// selects the hex form printed in reports, any other text is hashed, and
// an empty seed draws from system entropy.
func (c *Config) ResolveSeed() (rng.Seed, error) {
	switch {
	case c.Seed == "":
		return rng.RandomSeed()
	case strings.HasPrefix(c.Seed, "0x"):
		return rng.ParseSeed(strings.TrimPrefix(c.Seed, "0x"))
	default:
		return rng.SeedFromString(c.Seed), nil
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
