package gen

import "github.com/OCharnyshevich/tilegen/pkg/tilemap"

// DeepwaterPass deepens open water that is surrounded by water on all
// sides, within ocean biomes only.
type DeepwaterPass struct {
	radius int
}

// NewDeepwaterPass returns a deepwater pass using cfg.DeepwaterRadius.
func NewDeepwaterPass(cfg *Config) *DeepwaterPass {
	return &DeepwaterPass{radius: int(cfg.DeepwaterRadius)}
}

// Name implements Pass.
func (p *DeepwaterPass) Name() string { return "deepwater" }

// Apply deepens ocean water that is surrounded by water within the radius.
func (p *DeepwaterPass) Apply(tm *tilemap.TileMap) {
	for c, s := range tm.SubChunks() {
		if !tm.Chunk(c[0], c[1]).Biome(s).Properties().Ocean {
			continue
		}
		for pos := range tilemap.SubChunkTiles(c[0], c[1], s) {
			tile := tm.Tile(pos)
			if tile.Base() == tilemap.Water && p.surrounded(tm, pos) {
				tm.SetTile(pos, tile.WithBase(tilemap.Deepwater))
			}
		}
	}
}

// surrounded reports whether the whole square of the pass radius around pos
// is on the map and open water. Deepening never changes the answer for
// another tile, so writes need no buffering.
func (p *DeepwaterPass) surrounded(tm *tilemap.TileMap, pos tilemap.TilePos) bool {
	gx, gy := pos.ToGlobal()
	for dx := -p.radius; dx <= p.radius; dx++ {
		for dy := -p.radius; dy <= p.radius; dy++ {
			x, y := int(gx)+dx, int(gy)+dy
			if !tm.InBounds(x, y) {
				return false
			}
			b := tm.Tile(tilemap.FromGlobal(uint16(x), uint16(y))).Base()
			if b != tilemap.Water && b != tilemap.Deepwater {
				return false
			}
		}
	}
	return true
}
