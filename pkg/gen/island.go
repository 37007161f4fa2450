package gen

import (
	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// sandToWater is the chance, out of 255, that sand floods given the number
// of water-like 8-neighbors.
var sandToWater = [9]int{0, 0, 0, 8, 16, 32, 64, 128, 255}

// IslandPass drops tiny islands and reshapes coastlines inside ocean biomes.
type IslandPass struct {
	cfg   *Config
	noise *noise.Discrete
}

// NewIslandPass returns an island pass keyed by r.
func NewIslandPass(cfg *Config, r rng.Xoroshiro128PP) *IslandPass {
	return &IslandPass{cfg: cfg, noise: noise.NewDiscrete(r)}
}

// Name implements Pass.
func (p *IslandPass) Name() string { return "islands" }

// Apply sinks small islands and reshapes coastlines in ocean biomes.
func (p *IslandPass) Apply(tm *tilemap.TileMap) {
	p.removeSmall(tm)
	for step := 1; step <= p.cfg.IslandSmoothenSteps; step++ {
		p.step(tm, uint32(step))
	}
	p.removeSmall(tm)
}

// isIsland reports whether b counts as dry ground for island detection.
func isIsland(b tilemap.BaseType) bool { return !b.Watery() }

func (p *IslandPass) removeSmall(tm *tilemap.TileMap) int {
	return removeSmallComponents(tm, p.noise, isIsland, true, p.cfg.IslandRemoveThreshold)
}

type coastCounts struct {
	land, sand, water int
}

func (p *IslandPass) step(tm *tilemap.TileMap, step uint32) {
	var pending []replacement
	neighbors := make([]tilemap.TilePos, 0, 8)
	for c, s := range tm.SubChunks() {
		biome := tm.Chunk(c[0], c[1]).Biome(s)
		if !biome.Properties().Ocean {
			continue
		}
		for pos := range tilemap.SubChunkTiles(c[0], c[1], s) {
			neighbors = tm.AppendNeighbors(neighbors[:0], pos, true)
			if len(neighbors) < 8 {
				continue
			}
			counts := countNeighbors(tm, neighbors)
			adj := coastCounts{
				land:  counts[tilemap.Land],
				sand:  counts[tilemap.Sand],
				water: counts[tilemap.Water] + counts[tilemap.Deepwater] + counts[tilemap.Ice],
			}
			x, y := pos.ToGlobal()
			roll := int(uint8(p.noise.Noise(uint32(x), uint32(y), step)))

			tile := tm.Tile(pos)
			if next := coastTransition(tile.Base(), biome, roll, adj); next != tile.Base() {
				pending = append(pending, replacement{pos, tile.WithBase(next)})
			}
		}
	}
	applyReplacements(tm, pending)
}

// coastTransition decides the next base of one ocean-biome tile. roll is
// uniform in [0, 255].
func coastTransition(base tilemap.BaseType, biome tilemap.Biome, roll int, adj coastCounts) tilemap.BaseType {
	if base == tilemap.Sand && roll < sandToWater[adj.water] {
		return tilemap.Water
	}
	switch {
	case !isIsland(base):
		if roll < clampByte(adj.sand*8+adj.land*32) {
			return tilemap.Sand
		}
	case base == tilemap.Sand && biome == tilemap.LukeOcean:
		if roll < clampByte(256-adj.water*32-adj.sand*12) {
			return tilemap.Land
		}
	case base == tilemap.Land:
		if roll < clampByte(adj.water*32+adj.sand*8) {
			return tilemap.Sand
		}
	}
	return base
}
