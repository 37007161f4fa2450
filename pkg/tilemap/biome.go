package tilemap

// Biome is a climate class assigned to each 4×4 sub-chunk.
// The value is temperature*3 + humidity.
type Biome uint8

const (
	SnowyPeaks  Biome = iota // cold, dry
	SnowyPlains              // cold, moderate
	FrozenOcean              // cold, wet
	Plains                   // temperate, dry
	Forest                   // temperate, moderate
	Ocean                    // temperate, wet
	Desert                   // hot, dry
	Savanna                  // hot, moderate
	LukeOcean                // hot, wet

	BiomeCount = iota
)

// Temperature is the climate temperature class.
type Temperature uint8

const (
	Cold Temperature = iota
	Temperate
	Hot
)

// Humidity is the climate humidity class.
type Humidity uint8

const (
	Dry Humidity = iota
	Moderate
	Wet
)

// BiomeProperties are the target base-type ratios of a biome. Mountain takes
// whatever the four ratios leave.
type BiomeProperties struct {
	Name        string
	Temperature Temperature
	Humidity    Humidity
	Ocean       bool

	WaterRatio float64
	IceRatio   float64
	SandRatio  float64
	LandRatio  float64
}

// MountainRatio returns the share left for mountains.
func (p BiomeProperties) MountainRatio() float64 {
	r := 1 - p.WaterRatio - p.IceRatio - p.SandRatio - p.LandRatio
	if r < 0 {
		return 0
	}
	return r
}

var biomeProperties = [BiomeCount]BiomeProperties{
	SnowyPeaks: {
		Name: "Snowy Peaks", Temperature: Cold, Humidity: Dry,
		WaterRatio: .05, IceRatio: .2, SandRatio: .05, LandRatio: .3,
	},
	SnowyPlains: {
		Name: "Snowy Plains", Temperature: Cold, Humidity: Moderate,
		WaterRatio: .05, IceRatio: .25, SandRatio: .1, LandRatio: .4,
	},
	FrozenOcean: {
		Name: "Frozen Ocean", Temperature: Cold, Humidity: Wet, Ocean: true,
		WaterRatio: .15, IceRatio: .8, SandRatio: .05,
	},
	Plains: {
		Name: "Plains", Temperature: Temperate, Humidity: Dry,
		WaterRatio: .05, SandRatio: .05, LandRatio: .7,
	},
	Forest: {
		Name: "Forest", Temperature: Temperate, Humidity: Moderate,
		WaterRatio: .1, SandRatio: .05, LandRatio: .75,
	},
	Ocean: {
		Name: "Ocean", Temperature: Temperate, Humidity: Wet, Ocean: true,
		WaterRatio: .95, SandRatio: .03, LandRatio: .02,
	},
	Desert: {
		Name: "Desert", Temperature: Hot, Humidity: Dry,
		SandRatio: .85,
	},
	Savanna: {
		Name: "Savanna", Temperature: Hot, Humidity: Moderate,
		WaterRatio: .2, SandRatio: .1, LandRatio: .5,
	},
	LukeOcean: {
		Name: "Luke Ocean", Temperature: Hot, Humidity: Wet, Ocean: true,
		WaterRatio: .95, SandRatio: .01, LandRatio: .04,
	},
}

// Properties returns the static properties of b. Unknown biomes yield the
// zero value, which generates solid mountain.
func (b Biome) Properties() BiomeProperties {
	if b >= BiomeCount {
		return BiomeProperties{Name: "Unknown"}
	}
	return biomeProperties[b]
}

func (b Biome) String() string { return b.Properties().Name }

// DetermineBiome classifies a climate sample. Both inputs are clamped to
// [0, 1] and split into thirds.
func DetermineBiome(temperature, humidity float64) Biome {
	t := Temperature(tercile(temperature))
	h := Humidity(tercile(humidity))
	return Biome(uint8(t)*3 + uint8(h))
}

func tercile(v float64) uint8 {
	switch {
	case v < 1.0/3:
		return 0
	case v < 2.0/3:
		return 1
	default:
		return 2
	}
}
