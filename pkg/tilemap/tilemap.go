package tilemap

import (
	"errors"
	"fmt"
	"iter"
)

// MaxSize is the largest supported number of chunks along one side.
const MaxSize = 100

var (
	// ErrInvalidSize is returned by New for sizes outside [1, MaxSize].
	ErrInvalidSize = errors.New("tilemap: size must be between 1 and 100")
	// ErrOutOfBounds is the panic value for chunk or tile coordinates outside
	// the map. It always signals a caller bug.
	ErrOutOfBounds = errors.New("tilemap: coordinates out of bounds")
)

// neighbor offsets: four cardinal directions first, then the diagonals.
var (
	neighborDX = [8]int{-1, 1, 0, 0, -1, 1, -1, 1}
	neighborDY = [8]int{0, 0, -1, 1, -1, -1, 1, 1}
)

// TileMap is a square grid of chunks. It owns all chunk storage and is
// never resized after New. Not safe for concurrent mutation.
type TileMap struct {
	size   int
	chunks []Chunk // index = x*size + y
}

// New allocates a size×size chunk map filled with zero tiles
// (Mountain, Empty) and the first biome.
func New(size int) (*TileMap, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &TileMap{size: size, chunks: make([]Chunk, size*size)}, nil
}

// Size returns the number of chunks along one side.
func (m *TileMap) Size() int { return m.size }

// GlobalSize returns the number of tiles along one side.
func (m *TileMap) GlobalSize() int { return m.size * ChunkSize }

// Chunk returns the chunk at (x, y). It panics if the chunk is outside the map.
func (m *TileMap) Chunk(x, y int) *Chunk {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		panic(fmt.Errorf("%w: chunk (%d, %d) in %d×%d map", ErrOutOfBounds, x, y, m.size, m.size))
	}
	return &m.chunks[x*m.size+y]
}

// ChunkOf returns the chunk holding pos.
func (m *TileMap) ChunkOf(pos TilePos) *Chunk {
	m.check(pos)
	return &m.chunks[int(pos.ChunkX)*m.size+int(pos.ChunkY)]
}

func (m *TileMap) check(pos TilePos) {
	if int(pos.ChunkX) >= m.size || int(pos.ChunkY) >= m.size {
		panic(fmt.Errorf("%w: chunk (%d, %d) in %d×%d map", ErrOutOfBounds, pos.ChunkX, pos.ChunkY, m.size, m.size))
	}
	if pos.LocalX >= ChunkSize || pos.LocalY >= ChunkSize {
		panic(fmt.Errorf("%w: local tile (%d, %d)", ErrOutOfBounds, pos.LocalX, pos.LocalY))
	}
}

// Tile returns the tile at pos. It panics if pos is outside the map.
func (m *TileMap) Tile(pos TilePos) Tile {
	return m.ChunkOf(pos).Tiles[pos.LocalX][pos.LocalY]
}

// SetTile stores t at pos. It panics if pos is outside the map.
func (m *TileMap) SetTile(pos TilePos, t Tile) {
	m.ChunkOf(pos).Tiles[pos.LocalX][pos.LocalY] = t
}

// Biome returns the biome of the sub-chunk holding pos.
func (m *TileMap) Biome(pos TilePos) Biome {
	return m.ChunkOf(pos).BiomeAt(pos.LocalX, pos.LocalY)
}

// InBounds reports whether the global coordinates lie on the map.
func (m *TileMap) InBounds(x, y int) bool {
	n := m.GlobalSize()
	return x >= 0 && y >= 0 && x < n && y < n
}

// IsAtBoundary reports whether pos lies on the outermost ring of tiles.
func (m *TileMap) IsAtBoundary(pos TilePos) bool {
	x, y := pos.ToGlobal()
	last := uint16(m.GlobalSize() - 1)
	return x == 0 || y == 0 || x == last || y == last
}

// Neighbors returns the in-bounds neighbors of pos: the four cardinal ones,
// plus the four diagonals when diagonal is set.
func (m *TileMap) Neighbors(pos TilePos, diagonal bool) []TilePos {
	return m.AppendNeighbors(make([]TilePos, 0, 8), pos, diagonal)
}

// AppendNeighbors is Neighbors appending to dst.
func (m *TileMap) AppendNeighbors(dst []TilePos, pos TilePos, diagonal bool) []TilePos {
	gx, gy := pos.ToGlobal()
	n := 4
	if diagonal {
		n = 8
	}
	for i := 0; i < n; i++ {
		x := int(gx) + neighborDX[i]
		y := int(gy) + neighborDY[i]
		if m.InBounds(x, y) {
			dst = append(dst, FromGlobal(uint16(x), uint16(y)))
		}
	}
	return dst
}

// All yields every tile position in chunk-major order: chunk x, chunk y,
// local x, local y.
func (m *TileMap) All() iter.Seq[TilePos] {
	return func(yield func(TilePos) bool) {
		for cx := 0; cx < m.size; cx++ {
			for cy := 0; cy < m.size; cy++ {
				for lx := 0; lx < ChunkSize; lx++ {
					for ly := 0; ly < ChunkSize; ly++ {
						pos := TilePos{uint8(cx), uint8(cy), uint8(lx), uint8(ly)}
						if !yield(pos) {
							return
						}
					}
				}
			}
		}
	}
}

// SubChunks yields every biome cell with the coordinates of its chunk.
func (m *TileMap) SubChunks() iter.Seq2[[2]int, SubChunkPos] {
	return func(yield func([2]int, SubChunkPos) bool) {
		for cx := 0; cx < m.size; cx++ {
			for cy := 0; cy < m.size; cy++ {
				for sx := 0; sx < SubChunkCount; sx++ {
					for sy := 0; sy < SubChunkCount; sy++ {
						if !yield([2]int{cx, cy}, SubChunkPos{uint8(sx), uint8(sy)}) {
							return
						}
					}
				}
			}
		}
	}
}

// SubChunkTiles yields the tiles of one biome cell.
func SubChunkTiles(chunkX, chunkY int, s SubChunkPos) iter.Seq[TilePos] {
	return func(yield func(TilePos) bool) {
		sx, sy := s.TileStart()
		for lx := sx; lx < sx+SubChunkSize; lx++ {
			for ly := sy; ly < sy+SubChunkSize; ly++ {
				if !yield(TilePos{uint8(chunkX), uint8(chunkY), lx, ly}) {
					return
				}
			}
		}
	}
}
