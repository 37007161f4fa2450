package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

func TestHoleFillPlugsPockets(t *testing.T) {
	tm := newMap(t, 1, tilemap.Mountain)
	setBase(tm, tilemap.Water, [2]uint16{10, 10}, [2]uint16{10, 11}, [2]uint16{11, 10})
	// Diagonal neighbors are separate pockets.
	setBase(tm, tilemap.Land, [2]uint16{30, 30}, [2]uint16{31, 31})

	NewHoleFillPass(testConfig("holes")).Apply(tm)
	for pos := range tm.All() {
		assert.Equal(t, tilemap.Mountain, tm.Tile(pos).Base())
	}
}

func TestHoleFillKeepsEdgeAndLargePockets(t *testing.T) {
	tm := newMap(t, 1, tilemap.Mountain)
	setBase(tm, tilemap.Sand, [2]uint16{0, 5}, [2]uint16{1, 5})
	for x := uint16(20); x < 31; x++ {
		setBase(tm, tilemap.Land, [2]uint16{x, 40})
	}
	before := snapshot(tm)

	NewHoleFillPass(testConfig("keep")).Apply(tm)
	assert.Equal(t, before, snapshot(tm))
}

func TestHoleFillThreshold(t *testing.T) {
	tm := newMap(t, 1, tilemap.Mountain)
	for x := uint16(20); x < 30; x++ {
		setBase(tm, tilemap.Land, [2]uint16{x, 40})
	}
	NewHoleFillPass(testConfig("exact")).Apply(tm)
	assert.Equal(t, tilemap.Mountain, tm.Tile(at(25, 40)).Base())
}
