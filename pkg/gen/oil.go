package gen

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

const (
	oilShuffleStream = 48
	oilSkipChannel   = 0x2b52aaed
)

// OilPass scatters oil fields over dry land, favouring arid biomes.
type OilPass struct {
	cfg   *Config
	rng   rng.Xoroshiro128PP
	noise *noise.Discrete
}

// NewOilPass takes the center-sampling stream and the noise stream.
func NewOilPass(cfg *Config, r, noiseRNG rng.Xoroshiro128PP) *OilPass {
	return &OilPass{cfg: cfg, rng: r, noise: noise.NewDiscrete(noiseRNG)}
}

// Name implements Pass.
func (p *OilPass) Name() string { return "oil" }

// Apply places oil field centres and grows a field around each.
func (p *OilPass) Apply(tm *tilemap.TileMap) {
	suitable := func(pos tilemap.TilePos) bool { return oilSuitable(tm.Tile(pos)) }
	growth := p.growth(suitable)
	for _, c := range p.centers(tm, suitable) {
		paintSurface(tm, growth.grow(tm, p.noise, c), tilemap.Oil)
	}
}

func (p *OilPass) growth(suitable func(tilemap.TilePos) bool) clusterGrowth {
	return clusterGrowth{
		minSize:     p.cfg.OilClusterMinSize,
		maxSize:     p.cfg.OilClusterMaxSize,
		streamIndex: oilShuffleStream,
		skipChannel: oilSkipChannel,
		skip:        func(v uint64) bool { return v&1 == 0 },
		suitable:    suitable,
	}
}

func (p *OilPass) centers(tm *tilemap.TileMap, suitable func(tilemap.TilePos) bool) []tilemap.TilePos {
	density := uint32(p.cfg.OilDensity)
	if density == 0 {
		return nil
	}
	chunks := uint32(tm.Size() * tm.Size())
	expected := chunks * density / 255
	search := centerSearch{
		expected: expected,
		attempts: expected * 32,
		minDist:  tilemap.ChunkSize * 4 / 5 * 255 / density,
		suitable: suitable,
		accept: func(pos tilemap.TilePos, x, y uint16) bool {
			pref := oilPreference(tm.Biome(pos), p.cfg.OilBaseProbe)
			return uint8(p.noise.Noise(uint32(x), uint32(y), 0)) < pref
		},
	}
	r := p.rng
	return search.run(tm, rand.New(&r))
}

func oilSuitable(t tilemap.Tile) bool {
	b := t.Base()
	return (b == tilemap.Land || b == tilemap.Sand) && t.Surface() == tilemap.Empty
}

// oilPreference scales the base acceptance chance by how likely the biome
// is to hold oil. Oceans never do.
func oilPreference(b tilemap.Biome, base uint8) uint8 {
	scale := func(f uint32) uint8 { return uint8(uint32(base) * f / 255) }
	switch b {
	case tilemap.Desert, tilemap.Plains:
		return base
	case tilemap.Savanna, tilemap.SnowyPlains:
		return scale(204)
	case tilemap.Forest:
		return scale(128)
	case tilemap.SnowyPeaks:
		return scale(77)
	default:
		return 0
	}
}
