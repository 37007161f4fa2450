package gen

import (
	"fmt"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// BaseTypePass fills every tile with a base type drawn from its biome's
// composition ratios. Surfaces are reset to Empty.
type BaseTypePass struct {
	base *noise.Uniform
}

// NewBaseTypePass builds and calibrates the base terrain channel.
func NewBaseTypePass(cfg *Config, r rng.Xoroshiro128PP) (*BaseTypePass, error) {
	u, err := noise.NewUniformSource(cfg.NoiseSource, r)
	if err != nil {
		return nil, fmt.Errorf("base noise: %w", err)
	}
	u.Calibrate(cfg.BaseScale, cfg.BaseOctaves, cfg.BasePersistence, cfg.CalibrationSamples)
	return &BaseTypePass{base: u}, nil
}

// Name implements Pass.
func (p *BaseTypePass) Name() string { return "base_type" }

// Apply picks every tile's base type from its biome ratios and clears the surface.
func (p *BaseTypePass) Apply(tm *tilemap.TileMap) {
	for pos := range tm.All() {
		x, y := pos.ToGlobal()
		v := p.base.At(float64(x), float64(y))
		base := DetermineBaseType(v, tm.Biome(pos).Properties())
		tm.SetTile(pos, tilemap.NewTile(base, tilemap.Empty))
	}
}

// DetermineBaseType walks the ratios in the order water, ice, sand, land,
// subtracting each from sample until one exceeds what is left. Anything past
// the four ratios is Mountain.
func DetermineBaseType(sample float64, props tilemap.BiomeProperties) tilemap.BaseType {
	cascade := [...]struct {
		base  tilemap.BaseType
		ratio float64
	}{
		{tilemap.Water, props.WaterRatio},
		{tilemap.Ice, props.IceRatio},
		{tilemap.Sand, props.SandRatio},
		{tilemap.Land, props.LandRatio},
	}
	for _, c := range cascade {
		if sample < c.ratio {
			return c.base
		}
		sample -= c.ratio
	}
	return tilemap.Mountain
}
