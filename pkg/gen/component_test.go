package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

func TestRemoveSmallComponentsAllMountain(t *testing.T) {
	tm := newMap(t, 1, tilemap.Mountain)
	before := snapshot(tm)

	removed := removeSmallComponents(tm, testNoise("c"), isMountain, true, 1<<20)
	assert.Zero(t, removed)
	assert.Equal(t, before, snapshot(tm))
}

func TestMountainPassLeavesSolidMountain(t *testing.T) {
	tm := newMap(t, 1, tilemap.Mountain)
	before := snapshot(tm)

	NewMountainPass(testConfig("solid"), rngFor("solid")).Apply(tm)
	assert.Equal(t, before, snapshot(tm))
}

func TestRemoveSmallComponentsDissolvesSpeck(t *testing.T) {
	tm := newMap(t, 1, tilemap.Land)
	speck := [][2]uint16{{10, 10}, {10, 11}, {11, 10}}
	setBase(tm, tilemap.Mountain, speck...)
	tm.SetTile(at(10, 10), tm.Tile(at(10, 10)).WithSurface(tilemap.Coal))

	removed := removeSmallComponents(tm, testNoise("speck"), isMountain, true, 10)
	assert.Equal(t, 1, removed)
	for _, p := range speck {
		assert.Equal(t, tilemap.Land, tm.Tile(at(p[0], p[1])).Base())
	}
	assert.Equal(t, tilemap.Coal, tm.Tile(at(10, 10)).Surface())
}

func TestRemoveSmallComponentsVotesFromSurroundings(t *testing.T) {
	tm := newMap(t, 1, tilemap.Land)
	setBase(tm, tilemap.Water, [2]uint16{19, 19}, [2]uint16{19, 20}, [2]uint16{19, 21})
	setBase(tm, tilemap.Mountain, [2]uint16{20, 20}, [2]uint16{20, 21})

	removeSmallComponents(tm, testNoise("vote"), isMountain, false, 10)
	for _, p := range [][2]uint16{{20, 20}, {20, 21}} {
		got := tm.Tile(at(p[0], p[1])).Base()
		assert.Contains(t, []tilemap.BaseType{tilemap.Land, tilemap.Water}, got)
	}
}

func TestRemoveSmallComponentsSkipsBoundary(t *testing.T) {
	tm := newMap(t, 1, tilemap.Land)
	setBase(tm, tilemap.Mountain, [2]uint16{0, 5}, [2]uint16{1, 5})
	before := snapshot(tm)

	assert.Zero(t, removeSmallComponents(tm, testNoise("edge"), isMountain, true, 10))
	assert.Equal(t, before, snapshot(tm))
}

func TestRemoveSmallComponentsKeepsLarge(t *testing.T) {
	tm := newMap(t, 1, tilemap.Land)
	for x := uint16(20); x < 24; x++ {
		for y := uint16(20); y < 23; y++ {
			setBase(tm, tilemap.Mountain, [2]uint16{x, y})
		}
	}
	before := snapshot(tm)

	assert.Zero(t, removeSmallComponents(tm, testNoise("large"), isMountain, true, 11))
	assert.Equal(t, before, snapshot(tm))

	assert.Equal(t, 1, removeSmallComponents(tm, testNoise("large"), isMountain, true, 12))
}

func TestRemoveSmallComponentsConnectivity(t *testing.T) {
	build := func() *tilemap.TileMap {
		tm := newMap(t, 1, tilemap.Land)
		// A diagonal staircase: one component when 8-connected, five when
		// 4-connected.
		for i := uint16(0); i < 5; i++ {
			setBase(tm, tilemap.Mountain, [2]uint16{30 + i, 30 + i})
		}
		return tm
	}

	assert.Equal(t, 0, removeSmallComponents(build(), testNoise("d"), isMountain, true, 4))
	assert.Equal(t, 5, removeSmallComponents(build(), testNoise("d"), isMountain, false, 4))
}

func TestPickWeighted(t *testing.T) {
	var votes [16]int
	votes[tilemap.Land] = 2
	votes[tilemap.Water] = 1

	tests := []struct {
		sample uint64
		want   tilemap.BaseType
	}{
		{0, tilemap.Land},
		{1, tilemap.Land},
		{2, tilemap.Water},
		{3, tilemap.Land},
		{1<<64 - 1, tilemap.Land}, // (2^64-1) mod 3 == 0
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pickWeighted(&votes, 3, tt.sample), "sample %d", tt.sample)
	}
}

func TestMountainStepFillsEnclosedTile(t *testing.T) {
	tm := newMap(t, 1, tilemap.Land)
	setBase(tm, tilemap.Mountain, [2]uint16{19, 20}, [2]uint16{21, 20}, [2]uint16{20, 19}, [2]uint16{20, 21})

	p := NewMountainPass(testConfig("fill"), rngFor("fill"))
	p.step(tm, 1)
	assert.Equal(t, tilemap.Mountain, tm.Tile(at(20, 20)).Base())
}

func TestMountainStepSkipsEdgeTiles(t *testing.T) {
	tm := newMap(t, 1, tilemap.Water)
	setBase(tm, tilemap.Mountain, [2]uint16{0, 10}, [2]uint16{63, 63})

	p := NewMountainPass(testConfig("edge"), rngFor("edge"))
	for step := uint32(1); step <= 8; step++ {
		p.step(tm, step)
	}
	assert.Equal(t, tilemap.Mountain, tm.Tile(at(0, 10)).Base())
	assert.Equal(t, tilemap.Mountain, tm.Tile(at(63, 63)).Base())
}

func TestMountainStepReplacesFromNeighbors(t *testing.T) {
	tm := newMap(t, 1, tilemap.Water)
	setBase(tm, tilemap.Mountain, [2]uint16{30, 30})

	p := NewMountainPass(testConfig("lone"), rngFor("lone"))
	p.step(tm, 1)
	assert.Contains(t, []tilemap.BaseType{tilemap.Mountain, tilemap.Water}, tm.Tile(at(30, 30)).Base())
	for pos := range tm.All() {
		if pos != at(30, 30) {
			assert.Equal(t, tilemap.Water, tm.Tile(pos).Base())
		}
	}
}
