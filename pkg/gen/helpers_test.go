package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

func newMap(t *testing.T, size int, base tilemap.BaseType) *tilemap.TileMap {
	t.Helper()
	tm, err := tilemap.New(size)
	require.NoError(t, err)
	for pos := range tm.All() {
		tm.SetTile(pos, tilemap.NewTile(base, tilemap.Empty))
	}
	return tm
}

func setBiomes(tm *tilemap.TileMap, b tilemap.Biome) {
	for c, s := range tm.SubChunks() {
		tm.Chunk(c[0], c[1]).SetBiome(s, b)
	}
}

func at(x, y uint16) tilemap.TilePos { return tilemap.FromGlobal(x, y) }

func setBase(tm *tilemap.TileMap, b tilemap.BaseType, points ...[2]uint16) {
	for _, p := range points {
		pos := at(p[0], p[1])
		tm.SetTile(pos, tm.Tile(pos).WithBase(b))
	}
}

func testNoise(label string) *noise.Discrete {
	return noise.NewDiscrete(rng.New(rng.SeedFromString(label)))
}

func testConfig(seed string) *Config {
	cfg := DefaultConfig()
	cfg.Seed = rng.SeedFromString(seed)
	return cfg
}

// snapshot copies every chunk so two maps can be compared with ==.
func snapshot(tm *tilemap.TileMap) []tilemap.Chunk {
	out := make([]tilemap.Chunk, 0, tm.Size()*tm.Size())
	for cx := 0; cx < tm.Size(); cx++ {
		for cy := 0; cy < tm.Size(); cy++ {
			out = append(out, *tm.Chunk(cx, cy))
		}
	}
	return out
}

func rngFor(label string) rng.Xoroshiro128PP { return rng.New(rng.SeedFromString(label)) }
