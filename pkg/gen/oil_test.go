package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

func TestOilPreference(t *testing.T) {
	tests := []struct {
		biome tilemap.Biome
		want  uint8
	}{
		{tilemap.Desert, 128},
		{tilemap.Plains, 128},
		{tilemap.Savanna, 102},
		{tilemap.SnowyPlains, 102},
		{tilemap.Forest, 64},
		{tilemap.SnowyPeaks, 38},
		{tilemap.Ocean, 0},
		{tilemap.FrozenOcean, 0},
		{tilemap.LukeOcean, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, oilPreference(tt.biome, 128), tt.biome.String())
	}
	assert.Equal(t, uint8(255), oilPreference(tilemap.Desert, 255))
	assert.Equal(t, uint8(204), oilPreference(tilemap.Savanna, 255))
}

func TestOilSuitable(t *testing.T) {
	assert.True(t, oilSuitable(tilemap.NewTile(tilemap.Land, tilemap.Empty)))
	assert.True(t, oilSuitable(tilemap.NewTile(tilemap.Sand, tilemap.Empty)))
	assert.False(t, oilSuitable(tilemap.NewTile(tilemap.Land, tilemap.Coal)))
	assert.False(t, oilSuitable(tilemap.NewTile(tilemap.Water, tilemap.Empty)))
	assert.False(t, oilSuitable(tilemap.NewTile(tilemap.Mountain, tilemap.Empty)))
}

func TestOilPassOnDryLand(t *testing.T) {
	tm := newMap(t, 4, tilemap.Land)
	setBiomes(tm, tilemap.Desert)

	NewOilPass(testConfig("oil"), rngFor("oil-r"), rngFor("oil-n")).Apply(tm)

	oil := 0
	for pos := range tm.All() {
		if tm.Tile(pos).Surface() == tilemap.Oil {
			oil++
		}
	}
	assert.Positive(t, oil)
}

func TestOilPassSkipsOceans(t *testing.T) {
	tm := newMap(t, 4, tilemap.Land)
	setBiomes(tm, tilemap.Ocean)
	before := snapshot(tm)

	NewOilPass(testConfig("oil"), rngFor("oil-r"), rngFor("oil-n")).Apply(tm)
	assert.Equal(t, before, snapshot(tm))
}

func TestOilPassZeroDensity(t *testing.T) {
	tm := newMap(t, 2, tilemap.Land)
	setBiomes(tm, tilemap.Desert)
	cfg := testConfig("none")
	cfg.OilDensity = 0
	before := snapshot(tm)

	NewOilPass(cfg, rngFor("a"), rngFor("b")).Apply(tm)
	assert.Equal(t, before, snapshot(tm))
}
