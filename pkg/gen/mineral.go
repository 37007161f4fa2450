package gen

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

const (
	mineralShuffleStream = 64
	mineralSkipChannel   = 0x3c73dde4
	mineralMinDistance   = 8
)

// MineralPass places hematite, titanomagnetite and gibbsite deposits along
// mountain edges, in that order.
type MineralPass struct {
	cfg   *Config
	rng   rng.Xoroshiro128PP
	noise *noise.Discrete
}

// NewMineralPass takes the center-sampling stream and the noise stream.
func NewMineralPass(cfg *Config, r, noiseRNG rng.Xoroshiro128PP) *MineralPass {
	return &MineralPass{cfg: cfg, rng: r, noise: noise.NewDiscrete(noiseRNG)}
}

// Name implements Pass.
func (p *MineralPass) Name() string { return "minerals" }

// Apply places hematite, titanomagnetite and gibbsite deposits along mountain edges.
func (p *MineralPass) Apply(tm *tilemap.TileMap) {
	minerals := []struct {
		surface tilemap.SurfaceType
		density uint16
	}{
		{tilemap.Hematite, p.cfg.HematiteDensity},
		{tilemap.Titanomagnetite, p.cfg.TitanomagnetiteDensity},
		{tilemap.Gibbsite, p.cfg.GibbsiteDensity},
	}
	suitable := func(pos tilemap.TilePos) bool { return mineralSuitable(tm, pos) }
	stream := p.rng
	r := rand.New(&stream)
	for _, m := range minerals {
		kind := uint32(m.surface)
		growth := p.growth(kind, suitable)
		for _, c := range p.centers(tm, r, kind, uint32(m.density), suitable) {
			paintSurface(tm, growth.grow(tm, p.noise, c), m.surface)
		}
	}
}

// growth keys every channel on the mineral kind so the three deposits
// differ in shape.
func (p *MineralPass) growth(kind uint32, suitable func(tilemap.TilePos) bool) clusterGrowth {
	return clusterGrowth{
		minSize:     p.cfg.MineralClusterMinSize,
		maxSize:     p.cfg.MineralClusterMaxSize,
		sizeChannel: kind * 16,
		streamIndex: mineralShuffleStream + kind*16,
		skipChannel: mineralSkipChannel + kind,
		skip:        func(v uint64) bool { return v%5 < 2 },
		suitable:    suitable,
	}
}

func (p *MineralPass) centers(
	tm *tilemap.TileMap, r *rand.Rand, kind, density uint32, suitable func(tilemap.TilePos) bool,
) []tilemap.TilePos {
	chunks := uint32(tm.Size() * tm.Size())
	expected := chunks * density / 255
	search := centerSearch{
		expected: expected,
		attempts: expected * 64,
		minDist:  mineralDistance(density),
		suitable: suitable,
		accept: func(_ tilemap.TilePos, x, y uint16) bool {
			return uint8(p.noise.Noise(uint32(x), uint32(y), kind)) < p.cfg.MineralBaseProb
		},
	}
	return search.run(tm, r)
}

// mineralDistance shrinks the spacing as density grows, down to a floor.
func mineralDistance(density uint32) uint32 {
	d := tilemap.ChunkSize / 2 * 128 / max(density, 1)
	return max(d, mineralMinDistance)
}

// mineralSuitable accepts empty mountain tiles with at least one
// non-mountain 4-neighbor.
func mineralSuitable(tm *tilemap.TileMap, pos tilemap.TilePos) bool {
	t := tm.Tile(pos)
	if t.Base() != tilemap.Mountain || t.Surface() != tilemap.Empty {
		return false
	}
	for _, n := range tm.Neighbors(pos, false) {
		if tm.Tile(n).Base() != tilemap.Mountain {
			return true
		}
	}
	return false
}
