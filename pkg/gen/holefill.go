package gen

import "github.com/OCharnyshevich/tilegen/pkg/tilemap"

// HoleFillPass turns small enclosed pockets of passable ground into
// mountain.
type HoleFillPass struct {
	threshold uint32
}

// NewHoleFillPass returns a hole fill pass using cfg.FillThreshold.
func NewHoleFillPass(cfg *Config) *HoleFillPass {
	return &HoleFillPass{threshold: cfg.FillThreshold}
}

// Name implements Pass.
func (p *HoleFillPass) Name() string { return "hole_fill" }

// Apply turns small enclosed passable pockets into mountain.
func (p *HoleFillPass) Apply(tm *tilemap.TileMap) {
	seen := newVisitedSet(tm)
	passable := tilemap.BaseType.Passable
	var (
		comp []tilemap.TilePos
		edge bool
	)
	for pos := range tm.All() {
		if seen.has(pos) {
			continue
		}
		if !passable(tm.Tile(pos).Base()) {
			seen.mark(pos)
			continue
		}
		comp, edge = collectComponent(tm, pos, false, passable, seen, comp[:0])
		if edge || uint32(len(comp)) > p.threshold {
			continue
		}
		for _, c := range comp {
			tm.SetTile(c, tm.Tile(c).WithBase(tilemap.Mountain))
		}
	}
}
