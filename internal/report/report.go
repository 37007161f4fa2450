// Package report summarizes a generated map for logs and the JSON run
// report.
package report

import (
	"time"

	"github.com/OCharnyshevich/tilegen/pkg/gen"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// Summary is the serializable digest of one run.
type Summary struct {
	Seed       string         `json:"seed"` // 0x-prefixed, accepted back by -seed
	MapSize    int            `json:"map_size"`
	Tiles      int            `json:"tiles"`
	Elapsed    time.Duration  `json:"elapsed_ns"`
	Base       map[string]int `json:"base"`
	Surface    map[string]int `json:"surface"`
	Biomes     map[string]int `json:"biomes"`   // sub-chunks per biome
	Deposits   map[string]int `json:"deposits"` // 4-connected resource clusters per surface
	Generation *gen.Config    `json:"generation,omitempty"`
}

// Summarize counts tiles, biome cells and resource deposits.
func Summarize(tm *tilemap.TileMap) *Summary {
	s := &Summary{
		MapSize:  tm.Size(),
		Base:     make(map[string]int),
		Surface:  make(map[string]int),
		Biomes:   make(map[string]int),
		Deposits: make(map[string]int),
	}
	for pos := range tm.All() {
		t := tm.Tile(pos)
		s.Tiles++
		s.Base[t.Base().String()]++
		s.Surface[t.Surface().String()]++
	}
	for c, sub := range tm.SubChunks() {
		s.Biomes[tm.Chunk(c[0], c[1]).Biome(sub).String()]++
	}
	countDeposits(tm, s.Deposits)
	return s
}

// LogArgs flattens the headline numbers into slog key/value pairs.
func (s *Summary) LogArgs() []any {
	return []any{
		"seed", s.Seed,
		"size", s.MapSize,
		"tiles", s.Tiles,
		"mountain", s.Base[tilemap.Mountain.String()],
		"water", s.Base[tilemap.Water.String()] + s.Base[tilemap.Deepwater.String()],
		"oil_fields", s.Deposits[tilemap.Oil.String()],
		"coal_seams", s.Deposits[tilemap.Coal.String()],
		"elapsed", s.Elapsed,
	}
}

// countDeposits flood-fills 4-connected runs of the same resource surface.
func countDeposits(tm *tilemap.TileMap, out map[string]int) {
	side := tm.GlobalSize()
	seen := make([]bool, side*side)
	index := func(p tilemap.TilePos) int {
		x, y := p.ToGlobal()
		return int(x)*side + int(y)
	}

	var queue, neighbors []tilemap.TilePos
	for pos := range tm.All() {
		surface := tm.Tile(pos).Surface()
		if seen[index(pos)] || !surface.Resource() {
			continue
		}
		out[surface.String()]++
		seen[index(pos)] = true
		queue = append(queue[:0], pos)
		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			neighbors = tm.AppendNeighbors(neighbors[:0], cur, false)
			for _, n := range neighbors {
				if seen[index(n)] || tm.Tile(n).Surface() != surface {
					continue
				}
				seen[index(n)] = true
				queue = append(queue, n)
			}
		}
	}
}
