package tilemap

import "cmp"

const (
	// ChunkSize is the side of a chunk in tiles.
	ChunkSize = 64
	// SubChunkSize is the side of a biome cell in tiles.
	SubChunkSize = 4
	// SubChunkCount is the number of biome cells along a chunk side.
	SubChunkCount = ChunkSize / SubChunkSize
)

// TilePos addresses a tile by its chunk and its offset inside the chunk.
type TilePos struct {
	ChunkX, ChunkY uint8
	LocalX, LocalY uint8
}

// FromGlobal converts global tile coordinates to a TilePos.
func FromGlobal(x, y uint16) TilePos {
	return TilePos{
		ChunkX: uint8(x / ChunkSize),
		ChunkY: uint8(y / ChunkSize),
		LocalX: uint8(x % ChunkSize),
		LocalY: uint8(y % ChunkSize),
	}
}

// ToGlobal returns the global tile coordinates of p.
func (p TilePos) ToGlobal() (x, y uint16) {
	return uint16(p.ChunkX)*ChunkSize + uint16(p.LocalX),
		uint16(p.ChunkY)*ChunkSize + uint16(p.LocalY)
}

// Compare orders positions by chunk x, chunk y, local x, then local y.
func (p TilePos) Compare(o TilePos) int {
	if c := cmp.Compare(p.ChunkX, o.ChunkX); c != 0 {
		return c
	}
	if c := cmp.Compare(p.ChunkY, o.ChunkY); c != 0 {
		return c
	}
	if c := cmp.Compare(p.LocalX, o.LocalX); c != 0 {
		return c
	}
	return cmp.Compare(p.LocalY, o.LocalY)
}

// Less reports whether p sorts before o.
func (p TilePos) Less(o TilePos) bool { return p.Compare(o) < 0 }

// SqrDistance returns the squared Euclidean distance in global space.
func (p TilePos) SqrDistance(o TilePos) uint32 {
	px, py := p.ToGlobal()
	ox, oy := o.ToGlobal()
	dx := int64(px) - int64(ox)
	dy := int64(py) - int64(oy)
	return uint32(dx*dx + dy*dy)
}

// SubChunk returns the biome cell holding p inside its chunk.
func (p TilePos) SubChunk() SubChunkPos {
	return SubChunkPos{X: p.LocalX / SubChunkSize, Y: p.LocalY / SubChunkSize}
}

// SubChunkPos addresses a biome cell inside a chunk.
type SubChunkPos struct {
	X, Y uint8
}

// TileStart returns the local coordinates of the cell's first tile.
func (s SubChunkPos) TileStart() (x, y uint8) {
	return s.X * SubChunkSize, s.Y * SubChunkSize
}
