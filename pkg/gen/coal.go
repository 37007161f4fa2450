package gen

import (
	"container/heap"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

const coalSeedChannel = 0x90

// coalGrowth is the per-biome growth factor, out of 255.
var coalGrowth = [tilemap.BiomeCount]uint32{
	tilemap.SnowyPeaks:  77,
	tilemap.SnowyPlains: 102,
	tilemap.FrozenOcean: 26,
	tilemap.Plains:      128,
	tilemap.Forest:      255,
	tilemap.Ocean:       102,
	tilemap.Desert:      51,
	tilemap.Savanna:     153,
	tilemap.LukeOcean:   204,
}

// CoalPass seeds coal in every chunk and grows the seams over a few CA
// steps.
type CoalPass struct {
	cfg   *Config
	noise *noise.Discrete
}

// NewCoalPass returns a coal pass keyed by noiseRNG.
func NewCoalPass(cfg *Config, noiseRNG rng.Xoroshiro128PP) *CoalPass {
	return &CoalPass{cfg: cfg, noise: noise.NewDiscrete(noiseRNG)}
}

// Name implements Pass.
func (p *CoalPass) Name() string { return "coal" }

// Apply seeds coal in every chunk and grows the seams.
func (p *CoalPass) Apply(tm *tilemap.TileMap) {
	var seeds []tilemap.TilePos
	for cx := 0; cx < tm.Size(); cx++ {
		for cy := 0; cy < tm.Size(); cy++ {
			seeds = p.chunkSeeds(tm, cx, cy, seeds)
		}
	}
	paintSurface(tm, seeds, tilemap.Coal)
	for step := 1; step <= int(p.cfg.CoalEvolutionSteps); step++ {
		p.step(tm, uint32(step))
	}
}

func coalSuitable(t tilemap.Tile) bool {
	b := t.Base()
	return (b == tilemap.Land || b == tilemap.Sand) && t.Surface() == tilemap.Empty
}

// chunkSeeds appends the coalSeedsPerChunk suitable tiles of one chunk with
// the highest seed noise.
func (p *CoalPass) chunkSeeds(tm *tilemap.TileMap, cx, cy int, dst []tilemap.TilePos) []tilemap.TilePos {
	k := int(p.cfg.CoalSeedsPerChunk)
	if k == 0 {
		return dst
	}
	top := make(rankedTiles, 0, k+1)
	chunk := tm.Chunk(cx, cy)
	for lx := 0; lx < tilemap.ChunkSize; lx++ {
		for ly := 0; ly < tilemap.ChunkSize; ly++ {
			if !coalSuitable(chunk.Tiles[lx][ly]) {
				continue
			}
			pos := tilemap.TilePos{ChunkX: uint8(cx), ChunkY: uint8(cy), LocalX: uint8(lx), LocalY: uint8(ly)}
			x, y := pos.ToGlobal()
			heap.Push(&top, rankedTile{pos: pos, rank: p.noise.Noise(uint32(x), uint32(y), coalSeedChannel)})
			if top.Len() > k {
				heap.Pop(&top)
			}
		}
	}
	for _, r := range top {
		dst = append(dst, r.pos)
	}
	return dst
}

// step grows coal onto suitable tiles next to existing coal. The chance
// rises with the number of coal 4-neighbors and the biome factor.
func (p *CoalPass) step(tm *tilemap.TileMap, step uint32) {
	var grown []tilemap.TilePos
	neighbors := make([]tilemap.TilePos, 0, 4)
	for pos := range tm.All() {
		if !coalSuitable(tm.Tile(pos)) {
			continue
		}
		coal := uint32(0)
		neighbors = tm.AppendNeighbors(neighbors[:0], pos, false)
		for _, n := range neighbors {
			if tm.Tile(n).Surface() == tilemap.Coal {
				coal++
			}
		}
		if coal == 0 {
			continue
		}
		chance := min(coal*uint32(p.cfg.CoalGrowthBaseProb)*coalFactor(tm.Biome(pos))/255, 255)
		x, y := pos.ToGlobal()
		if uint32(uint8(p.noise.Noise(uint32(x), uint32(y), step))) < chance {
			grown = append(grown, pos)
		}
	}
	paintSurface(tm, grown, tilemap.Coal)
}

func coalFactor(b tilemap.Biome) uint32 {
	if b >= tilemap.BiomeCount {
		return 0
	}
	return coalGrowth[b]
}

type rankedTile struct {
	pos  tilemap.TilePos
	rank uint64
}

// rankedTiles is a min-heap on rank, so popping drops the weakest seed.
type rankedTiles []rankedTile

func (h rankedTiles) Len() int { return len(h) }
func (h rankedTiles) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}
	return h[j].pos.Less(h[i].pos)
}
func (h rankedTiles) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *rankedTiles) Push(x any)   { *h = append(*h, x.(rankedTile)) }
func (h *rankedTiles) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
