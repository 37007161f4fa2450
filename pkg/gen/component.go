package gen

import (
	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// removeSmallComponents finds every connected component of tiles whose base
// satisfies match. Components that stay off the map edge and have at most
// threshold tiles are dissolved into their surroundings: each tile takes a
// base type drawn from the external 8-neighbors, weighted by how often each
// type occurs there. All writes land after the sweep. It returns the number
// of components removed.
func removeSmallComponents(
	tm *tilemap.TileMap, nz *noise.Discrete,
	match func(tilemap.BaseType) bool, diagonal bool, threshold uint32,
) int {
	seen := newVisitedSet(tm)
	var (
		pending []replacement
		comp    []tilemap.TilePos
		edge    bool
		removed int
	)
	for pos := range tm.All() {
		if seen.has(pos) {
			continue
		}
		if !match(tm.Tile(pos).Base()) {
			seen.mark(pos)
			continue
		}
		comp, edge = collectComponent(tm, pos, diagonal, match, seen, comp[:0])
		if edge || uint32(len(comp)) > threshold {
			continue
		}
		votes, total := surroundingVotes(tm, comp, match)
		if total == 0 {
			continue
		}
		for _, p := range comp {
			x, y := p.ToGlobal()
			base := pickWeighted(&votes, total, nz.Noise(uint32(x), uint32(y), 0))
			pending = append(pending, replacement{p, tm.Tile(p).WithBase(base)})
		}
		removed++
	}
	applyReplacements(tm, pending)
	return removed
}

// surroundingVotes counts the base types of the unique non-matching
// 8-neighbors of a component.
func surroundingVotes(
	tm *tilemap.TileMap, comp []tilemap.TilePos, match func(tilemap.BaseType) bool,
) (votes [16]int, total int) {
	unique := make(map[tilemap.TilePos]struct{}, len(comp)*2)
	neighbors := make([]tilemap.TilePos, 0, 8)
	for _, p := range comp {
		neighbors = tm.AppendNeighbors(neighbors[:0], p, true)
		for _, n := range neighbors {
			if _, ok := unique[n]; ok {
				continue
			}
			unique[n] = struct{}{}
			if b := tm.Tile(n).Base(); !match(b) {
				votes[b]++
				total++
			}
		}
	}
	return votes, total
}

// pickWeighted maps sample onto the vote table in ascending type order.
// The modulo is slightly biased for small totals; the CA tuning assumes it.
func pickWeighted(votes *[16]int, total int, sample uint64) tilemap.BaseType {
	idx := sample % uint64(total)
	for b, n := range votes {
		if idx < uint64(n) {
			return tilemap.BaseType(b)
		}
		idx -= uint64(n)
	}
	panic("gen: weighted pick past vote total")
}
