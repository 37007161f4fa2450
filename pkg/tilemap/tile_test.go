package tilemap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestTileIsOneByte(t *testing.T) {
	assert.Equal(t, uintptr(1), unsafe.Sizeof(Tile(0)))
	assert.Equal(t, uintptr(ChunkSize*ChunkSize+SubChunkCount*SubChunkCount), unsafe.Sizeof(Chunk{}))
}

func TestTilePacking(t *testing.T) {
	for b := Mountain; b <= Deepwater; b++ {
		for _, s := range []SurfaceType{Empty, Oil, Hematite, Titanomagnetite, Gibbsite, Coal, Structure} {
			tile := NewTile(b, s)
			assert.Equal(t, b, tile.Base())
			assert.Equal(t, s, tile.Surface())
		}
	}
	assert.Equal(t, Tile(0x13), NewTile(Water, Oil))
}

func TestTileWith(t *testing.T) {
	tile := NewTile(Land, Oil)
	assert.Equal(t, NewTile(Sand, Oil), tile.WithBase(Sand))
	assert.Equal(t, NewTile(Land, Coal), tile.WithSurface(Coal))
}

func TestTypePredicates(t *testing.T) {
	assert.False(t, Mountain.Passable())
	assert.True(t, Sand.Passable())
	assert.True(t, Ice.Watery())
	assert.False(t, Land.Watery())
	assert.True(t, Coal.Resource())
	assert.False(t, Empty.Resource())
	assert.False(t, Structure.Resource())
	assert.Equal(t, "deepwater", Deepwater.String())
	assert.Equal(t, "titanomagnetite", Titanomagnetite.String())
	assert.Equal(t, "unknown", BaseType(9).String())
}
