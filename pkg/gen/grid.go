package gen

import "github.com/OCharnyshevich/tilegen/pkg/tilemap"

// visitedSet marks tiles by global position for one flood-fill sweep.
type visitedSet struct {
	side int
	bits []bool
}

func newVisitedSet(tm *tilemap.TileMap) *visitedSet {
	n := tm.GlobalSize()
	return &visitedSet{side: n, bits: make([]bool, n*n)}
}

func (v *visitedSet) index(pos tilemap.TilePos) int {
	x, y := pos.ToGlobal()
	return int(x)*v.side + int(y)
}

func (v *visitedSet) has(pos tilemap.TilePos) bool { return v.bits[v.index(pos)] }

// mark records pos and reports whether it was new.
func (v *visitedSet) mark(pos tilemap.TilePos) bool {
	i := v.index(pos)
	if v.bits[i] {
		return false
	}
	v.bits[i] = true
	return true
}

// replacement is a buffered tile write. CA steps and component sweeps
// collect these against the unmodified grid and apply them afterwards.
type replacement struct {
	pos  tilemap.TilePos
	tile tilemap.Tile
}

func applyReplacements(tm *tilemap.TileMap, pending []replacement) {
	for _, r := range pending {
		tm.SetTile(r.pos, r.tile)
	}
}

// collectComponent flood-fills from start over tiles whose base satisfies
// match, appending them to dst in BFS order. It reports whether any tile of
// the component lies on the map boundary.
func collectComponent(
	tm *tilemap.TileMap, start tilemap.TilePos, diagonal bool,
	match func(tilemap.BaseType) bool, seen *visitedSet, dst []tilemap.TilePos,
) ([]tilemap.TilePos, bool) {
	seen.mark(start)
	head := len(dst)
	dst = append(dst, start)
	edge := false
	neighbors := make([]tilemap.TilePos, 0, 8)
	for head < len(dst) {
		cur := dst[head]
		head++
		if !edge && tm.IsAtBoundary(cur) {
			edge = true
		}
		neighbors = tm.AppendNeighbors(neighbors[:0], cur, diagonal)
		for _, n := range neighbors {
			if seen.has(n) || !match(tm.Tile(n).Base()) {
				continue
			}
			seen.mark(n)
			dst = append(dst, n)
		}
	}
	return dst, edge
}

// countNeighbors tallies the base types of the given positions.
func countNeighbors(tm *tilemap.TileMap, positions []tilemap.TilePos) (counts [16]int) {
	for _, p := range positions {
		counts[tm.Tile(p).Base()]++
	}
	return counts
}

func clampByte(v int) int {
	return max(0, min(v, 255))
}
