package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, testConfig("defaults").Validate())
}

func TestValidateZeroSeed(t *testing.T) {
	err := DefaultConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed")
}

func TestValidateJoinsProblems(t *testing.T) {
	cfg := testConfig("bad")
	cfg.NoiseSource = "worley"
	cfg.BaseScale = 0
	cfg.HumidityOctaves = 0
	cfg.OilClusterMinSize = 9
	cfg.MineralClusterMinSize = 6

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, noise.ErrUnknownSource)
	msg := err.Error()
	for _, want := range []string{"base_scale", "humidity_octaves", "oil cluster", "mineral cluster"} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateAcceptsEverySource(t *testing.T) {
	for _, kind := range []string{noise.SourcePerlin, noise.SourceSimplex, noise.SourceOpenSimplex, noise.SourceAquilax} {
		cfg := testConfig("sources")
		cfg.NoiseSource = kind
		assert.NoError(t, cfg.Validate(), kind)
	}
}
