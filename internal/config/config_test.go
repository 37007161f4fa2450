package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

func TestMergeRespectsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapSize = 3
	cfg.Seed = "from-flag"
	cfg.Generation.NoiseSource = "simplex"

	fromFile := DefaultConfig()
	fromFile.MapSize = 20
	fromFile.Seed = "from-file"
	fromFile.OutDir = "/tmp/maps"
	fromFile.LogLevel = "debug"
	fromFile.Generation.NoiseSource = "aquilax"
	fromFile.Generation.OilDensity = 10

	Merge(cfg, fromFile, map[string]bool{"size": true, "seed": true, "noise": true})

	assert.Equal(t, 3, cfg.MapSize)
	assert.Equal(t, "from-flag", cfg.Seed)
	assert.Equal(t, "/tmp/maps", cfg.OutDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "simplex", cfg.Generation.NoiseSource)
	assert.Equal(t, uint8(10), cfg.Generation.OilDensity)
	assert.Equal(t, "aquilax", fromFile.Generation.NoiseSource, "file config must not be aliased")
}

func TestMergeWithoutFlags(t *testing.T) {
	cfg := DefaultConfig()
	fromFile := DefaultConfig()
	fromFile.MapSize = 5
	fromFile.Generation.NoiseSource = "opensimplex"

	Merge(cfg, fromFile, map[string]bool{})
	assert.Equal(t, 5, cfg.MapSize)
	assert.Equal(t, "opensimplex", cfg.Generation.NoiseSource)
}

func TestMergeKeepsGenerationWhenFileOmitsIt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.CoalSeedsPerChunk = 9
	fromFile := DefaultConfig()
	fromFile.Generation = nil

	Merge(cfg, fromFile, nil)
	assert.Equal(t, uint8(9), cfg.Generation.CoalSeedsPerChunk)
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Seed = "hello_world"
	seed, err := cfg.ResolveSeed()
	require.NoError(t, err)
	assert.Equal(t, rng.SeedFromString("hello_world"), seed)

	cfg.Seed = "0x" + seed.String()
	again, err := cfg.ResolveSeed()
	require.NoError(t, err)
	assert.Equal(t, seed, again)

	cfg.Seed = "0xnothex"
	_, err = cfg.ResolveSeed()
	assert.Error(t, err)

	cfg.Seed = ""
	random, err := cfg.ResolveSeed()
	require.NoError(t, err)
	assert.False(t, random.IsZero())
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	cfg.LogLevel = "DEBUG"
	l, err = cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	cfg.LogLevel = "loud"
	_, err = cfg.Level()
	assert.Error(t, err)
}
