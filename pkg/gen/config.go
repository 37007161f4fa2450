package gen

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/tilegen/pkg/noise"
	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// Config holds every tunable of one generation run. It is read-only while a
// run is in progress.
type Config struct {
	Seed rng.Seed `json:"-"`

	// NoiseSource names the coherent noise behind the climate and terrain
	// channels (see noise.NewSource).
	NoiseSource string `json:"noise_source"`

	TemperatureScale       float64 `json:"temperature_scale"`
	TemperatureOctaves     int     `json:"temperature_octaves"`
	TemperaturePersistence float64 `json:"temperature_persistence"`

	HumidityScale       float64 `json:"humidity_scale"`
	HumidityOctaves     int     `json:"humidity_octaves"`
	HumidityPersistence float64 `json:"humidity_persistence"`

	BaseScale       float64 `json:"base_scale"`
	BaseOctaves     int     `json:"base_octaves"`
	BasePersistence float64 `json:"base_persistence"`

	// CalibrationSamples is the CDF sample count for each uniform channel.
	CalibrationSamples int `json:"calibration_samples"`

	MountainSmoothenSteps   int    `json:"mountain_smoothen_steps"`
	MountainRemoveThreshold uint32 `json:"mountain_remove_threshold"`
	// MountainDiagonal makes mountain components 8-connected.
	MountainDiagonal bool `json:"mountain_diagonal"`

	IslandSmoothenSteps   int    `json:"island_smoothen_steps"`
	IslandRemoveThreshold uint32 `json:"island_remove_threshold"`

	FillThreshold   uint32 `json:"fill_threshold"`
	DeepwaterRadius uint32 `json:"deepwater_radius"`

	OilDensity        uint8 `json:"oil_density"` // clusters per 255 chunks
	OilClusterMinSize uint8 `json:"oil_cluster_min_size"`
	OilClusterMaxSize uint8 `json:"oil_cluster_max_size"`
	OilBaseProbe      uint8 `json:"oil_base_probe"` // out of 255

	HematiteDensity        uint16 `json:"hematite_density"` // clusters per 255 chunks
	TitanomagnetiteDensity uint16 `json:"titanomagnetite_density"`
	GibbsiteDensity        uint16 `json:"gibbsite_density"`
	MineralClusterMinSize  uint8  `json:"mineral_cluster_min_size"`
	MineralClusterMaxSize  uint8  `json:"mineral_cluster_max_size"`
	MineralBaseProb        uint8  `json:"mineral_base_prob"` // out of 255

	CoalSeedsPerChunk  uint8 `json:"coal_seeds_per_chunk"`
	CoalEvolutionSteps uint8 `json:"coal_evolution_steps"`
	CoalGrowthBaseProb uint8 `json:"coal_growth_base_prob"` // per coal neighbor, out of 255
}

// DefaultConfig returns a Config with the stock tuning. The seed is left
// zero and must be set before generating.
func DefaultConfig() *Config {
	return &Config{
		NoiseSource: noise.SourcePerlin,

		TemperatureScale:       0.05,
		TemperatureOctaves:     3,
		TemperaturePersistence: 0.4,

		HumidityScale:       0.05,
		HumidityOctaves:     3,
		HumidityPersistence: 0.4,

		BaseScale:       0.08,
		BaseOctaves:     3,
		BasePersistence: 0.5,

		CalibrationSamples: noise.DefaultSamples,

		MountainSmoothenSteps:   2,
		MountainRemoveThreshold: 10,
		MountainDiagonal:        true,

		IslandSmoothenSteps:   8,
		IslandRemoveThreshold: 8,

		FillThreshold:   10,
		DeepwaterRadius: 2,

		OilDensity:        204,
		OilClusterMinSize: 1,
		OilClusterMaxSize: 7,
		OilBaseProbe:      128,

		HematiteDensity:        450,
		TitanomagnetiteDensity: 300,
		GibbsiteDensity:        235,
		MineralClusterMinSize:  2,
		MineralClusterMaxSize:  5,
		MineralBaseProb:        192,

		CoalSeedsPerChunk:  3,
		CoalEvolutionSteps: 6,
		CoalGrowthBaseProb: 21,
	}
}

// Validate reports every inconsistent field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Seed.IsZero() {
		errs = append(errs, errors.New("seed must not be all zero"))
	}
	if err := noise.CheckSource(c.NoiseSource); err != nil {
		errs = append(errs, err)
	}
	for _, ch := range []struct {
		name    string
		scale   float64
		octaves int
	}{
		{"temperature", c.TemperatureScale, c.TemperatureOctaves},
		{"humidity", c.HumidityScale, c.HumidityOctaves},
		{"base", c.BaseScale, c.BaseOctaves},
	} {
		if ch.scale <= 0 {
			errs = append(errs, fmt.Errorf("%s_scale must be positive, got %v", ch.name, ch.scale))
		}
		if ch.octaves < 1 {
			errs = append(errs, fmt.Errorf("%s_octaves must be at least 1, got %d", ch.name, ch.octaves))
		}
	}
	if c.MountainSmoothenSteps < 0 {
		errs = append(errs, fmt.Errorf("mountain_smoothen_steps must not be negative, got %d", c.MountainSmoothenSteps))
	}
	if c.IslandSmoothenSteps < 0 {
		errs = append(errs, fmt.Errorf("island_smoothen_steps must not be negative, got %d", c.IslandSmoothenSteps))
	}
	if c.OilClusterMinSize > c.OilClusterMaxSize {
		errs = append(errs, fmt.Errorf("oil cluster size range [%d, %d] is empty", c.OilClusterMinSize, c.OilClusterMaxSize))
	}
	if c.MineralClusterMinSize > c.MineralClusterMaxSize {
		errs = append(errs, fmt.Errorf("mineral cluster size range [%d, %d] is empty", c.MineralClusterMinSize, c.MineralClusterMaxSize))
	}
	return errors.Join(errs...)
}
