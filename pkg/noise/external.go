package noise

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// OpenSimplex adapts github.com/ojrac/opensimplex-go to Source.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex seeds the OpenSimplex field with one draw from r.
func NewOpenSimplex(r *rng.Xoroshiro128PP) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.NewNormalized(int64(r.Next()))}
}

// Noise2D returns OpenSimplex noise remapped to [0,1].
func (o *OpenSimplex) Noise2D(x, y float64) float64 {
	return clamp01(o.n.Eval2(x, y))
}

// AquilaxPerlin adapts github.com/aquilax/go-perlin to Source.
type AquilaxPerlin struct {
	p *perlin.Perlin
}

// NewAquilaxPerlin seeds a single-octave field with one draw from r. Octaves
// are layered by Octave, not by the library.
func NewAquilaxPerlin(r *rng.Xoroshiro128PP) *AquilaxPerlin {
	return &AquilaxPerlin{p: perlin.NewPerlin(2, 2, 1, int64(r.Next()))}
}

// Noise2D returns go-perlin noise remapped to [0,1].
func (a *AquilaxPerlin) Noise2D(x, y float64) float64 {
	return clamp01((a.p.Noise2D(x, y) + 1) * 0.5)
}
