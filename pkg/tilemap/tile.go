// Package tilemap holds the chunked tile storage and the biome model the
// generator writes into.
package tilemap

// BaseType is the terrain of a tile, stored in the low nibble.
type BaseType uint8

const (
	Mountain BaseType = iota
	Land
	Sand
	Water
	Ice
	Deepwater
)

var baseNames = [...]string{"mountain", "land", "sand", "water", "ice", "deepwater"}

func (b BaseType) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return "unknown"
}

// Passable reports whether units can walk over the base type.
func (b BaseType) Passable() bool { return b != Mountain }

// Watery reports whether the base type is open or frozen water.
func (b BaseType) Watery() bool {
	return b == Water || b == Deepwater || b == Ice
}

// SurfaceType is the feature overlay of a tile, stored in the high nibble.
type SurfaceType uint8

const (
	Empty SurfaceType = iota
	Oil
	Hematite
	Titanomagnetite
	Gibbsite
	Coal

	// Structure marks player-built tiles; the generator never places it.
	Structure SurfaceType = 0xF
)

var surfaceNames = map[SurfaceType]string{
	Empty:           "empty",
	Oil:             "oil",
	Hematite:        "hematite",
	Titanomagnetite: "titanomagnetite",
	Gibbsite:        "gibbsite",
	Coal:            "coal",
	Structure:       "structure",
}

func (s SurfaceType) String() string {
	if name, ok := surfaceNames[s]; ok {
		return name
	}
	return "unknown"
}

// Resource reports whether s is a generated resource deposit.
func (s SurfaceType) Resource() bool {
	return s >= Oil && s <= Coal
}

// Tile packs a base type and a surface type into one byte:
// base in bits 0-3, surface in bits 4-7.
type Tile uint8

// NewTile packs base and surface.
func NewTile(base BaseType, surface SurfaceType) Tile {
	return Tile(uint8(base)&0xF | uint8(surface)<<4)
}

// Base returns the low nibble.
func (t Tile) Base() BaseType { return BaseType(t & 0xF) }

// Surface returns the high nibble.
func (t Tile) Surface() SurfaceType { return SurfaceType(t >> 4) }

// WithBase returns t with its base replaced.
func (t Tile) WithBase(b BaseType) Tile { return NewTile(b, t.Surface()) }

// WithSurface returns t with its surface replaced.
func (t Tile) WithSurface(s SurfaceType) Tile { return NewTile(t.Base(), s) }
