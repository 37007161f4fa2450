// Package noise provides the coherent and discrete noise primitives used by
// the terrain passes. Every generator is seeded from an rng stream so that a
// run is reproducible from its seed alone.
package noise

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// Source names accepted by NewSource.
const (
	SourcePerlin      = "perlin"
	SourceSimplex     = "simplex"
	SourceOpenSimplex = "opensimplex"
	SourceAquilax     = "aquilax"
)

// ErrUnknownSource is returned for a source name NewSource does not know.
var ErrUnknownSource = errors.New("unknown noise source")

// Source is a continuous 2D noise field with values in [0, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// NewSource builds the named coherent noise source from r. An empty name
// selects Perlin noise.
func NewSource(kind string, r *rng.Xoroshiro128PP) (Source, error) {
	switch kind {
	case "", SourcePerlin:
		return NewPerlin(r), nil
	case SourceSimplex:
		return NewSimplex(r), nil
	case SourceOpenSimplex:
		return NewOpenSimplex(r), nil
	case SourceAquilax:
		return NewAquilaxPerlin(r), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, kind)
	}
}

// CheckSource reports whether kind names a source NewSource can build.
func CheckSource(kind string) error {
	switch kind {
	case "", SourcePerlin, SourceSimplex, SourceOpenSimplex, SourceAquilax:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownSource, kind)
	}
}

// Octave layers octaves of src, doubling the frequency each time and scaling
// the amplitude by persistence. The result stays in [0, 1].
func Octave(src Source, x, y float64, octaves int, persistence float64) float64 {
	var total, maxVal float64
	frequency := 1.0
	amplitude := 1.0

	for range octaves {
		total += src.Noise2D(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
