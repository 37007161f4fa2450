package gen

import (
	"fmt"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
	"github.com/OCharnyshevich/tilegen/pkg/tilemap"
)

// BiomePass assigns a biome to every sub-chunk from two independent climate
// channels.
type BiomePass struct {
	temperature *noise.Uniform
	humidity    *noise.Uniform
}

// NewBiomePass builds and calibrates both climate channels.
func NewBiomePass(cfg *Config, temperature, humidity rng.Xoroshiro128PP) (*BiomePass, error) {
	t, err := noise.NewUniformSource(cfg.NoiseSource, temperature)
	if err != nil {
		return nil, fmt.Errorf("temperature noise: %w", err)
	}
	h, err := noise.NewUniformSource(cfg.NoiseSource, humidity)
	if err != nil {
		return nil, fmt.Errorf("humidity noise: %w", err)
	}
	t.Calibrate(cfg.TemperatureScale, cfg.TemperatureOctaves, cfg.TemperaturePersistence, cfg.CalibrationSamples)
	h.Calibrate(cfg.HumidityScale, cfg.HumidityOctaves, cfg.HumidityPersistence, cfg.CalibrationSamples)
	return &BiomePass{temperature: t, humidity: h}, nil
}

// Name implements Pass.
func (p *BiomePass) Name() string { return "biome" }

// Apply samples the climate at the centre tile of each sub-chunk.
func (p *BiomePass) Apply(tm *tilemap.TileMap) {
	for c, s := range tm.SubChunks() {
		sx, sy := s.TileStart()
		gx := float64(c[0]*tilemap.ChunkSize + int(sx) + tilemap.SubChunkSize/2)
		gy := float64(c[1]*tilemap.ChunkSize + int(sy) + tilemap.SubChunkSize/2)
		t, h := p.Climate(gx, gy)
		tm.Chunk(c[0], c[1]).SetBiome(s, tilemap.DetermineBiome(t, h))
	}
}

// Climate returns the uniform temperature and humidity at a global position.
func (p *BiomePass) Climate(x, y float64) (temperature, humidity float64) {
	return p.temperature.At(x, y), p.humidity.At(x, y)
}
