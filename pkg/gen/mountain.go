package gen

import (
	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// mountainRule gives the fill and remove chances, out of 16, for a tile with
// the indexed number of mountain 4-neighbors.
var mountainRule = [5]struct{ fill, remove uint64 }{
	{0, 12},
	{0, 4},
	{3, 1},
	{8, 0},
	{16, 0},
}

// MountainPass removes specks of mountain and rounds off ridges with a
// stochastic cellular automaton.
type MountainPass struct {
	cfg   *Config
	noise *noise.Discrete
}

// NewMountainPass returns a mountain pass keyed by r.
func NewMountainPass(cfg *Config, r rng.Xoroshiro128PP) *MountainPass {
	return &MountainPass{cfg: cfg, noise: noise.NewDiscrete(r)}
}

// Name implements Pass.
func (p *MountainPass) Name() string { return "mountains" }

// Apply removes small ranges, smooths ridges, then removes ranges left too small.
func (p *MountainPass) Apply(tm *tilemap.TileMap) {
	p.removeSmall(tm)
	for step := 1; step <= p.cfg.MountainSmoothenSteps; step++ {
		p.step(tm, uint32(step))
	}
	p.removeSmall(tm)
}

func isMountain(b tilemap.BaseType) bool { return b == tilemap.Mountain }

func (p *MountainPass) removeSmall(tm *tilemap.TileMap) int {
	return removeSmallComponents(tm, p.noise, isMountain, p.cfg.MountainDiagonal, p.cfg.MountainRemoveThreshold)
}

// step runs one CA generation. Tiles with fewer than four in-bounds
// neighbors are left alone.
func (p *MountainPass) step(tm *tilemap.TileMap, step uint32) {
	var pending []replacement
	neighbors := make([]tilemap.TilePos, 0, 4)
	for pos := range tm.All() {
		neighbors = tm.AppendNeighbors(neighbors[:0], pos, false)
		if len(neighbors) < 4 {
			continue
		}
		counts := countNeighbors(tm, neighbors)
		mountains := counts[tilemap.Mountain]
		rule := mountainRule[mountains]

		x, y := pos.ToGlobal()
		sample := p.noise.Noise(uint32(x), uint32(y), step)
		rd, sel := sample&0xF, sample>>4

		tile := tm.Tile(pos)
		switch {
		case tile.Base() == tilemap.Mountain && rule.remove > rd:
			open := len(neighbors) - mountains
			if open == 0 {
				continue
			}
			k := int(sel % uint64(open))
			for _, n := range neighbors {
				b := tm.Tile(n).Base()
				if b == tilemap.Mountain {
					continue
				}
				if k == 0 {
					pending = append(pending, replacement{pos, tile.WithBase(b)})
					break
				}
				k--
			}
		case tile.Base() != tilemap.Mountain && rule.fill > rd:
			pending = append(pending, replacement{pos, tile.WithBase(tilemap.Mountain)})
		}
	}
	applyReplacements(tm, pending)
}
