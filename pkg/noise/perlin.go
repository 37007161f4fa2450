package noise

import "github.com/OCharnyshevich/tilegen/pkg/rng"

// Perlin is classic 2D gradient noise over a seeded permutation table.
type Perlin struct {
	lattice
}

// NewPerlin shuffles a permutation table with r.
func NewPerlin(r *rng.Xoroshiro128PP) *Perlin {
	return &Perlin{lattice: newLattice(r)}
}

// Noise2D returns Perlin noise at (x, y) in the range [0, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	xi, yi := fastFloor(x), fastFloor(y)
	x -= float64(xi)
	y -= float64(yi)
	u, v := fade(x), fade(y)

	res := lerp(v,
		lerp(u, grad(p.hash(xi, yi), x, y), grad(p.hash(xi+1, yi), x-1, y)),
		lerp(u, grad(p.hash(xi, yi+1), x, y-1), grad(p.hash(xi+1, yi+1), x-1, y-1)),
	)
	return clamp01((res + 1) * 0.5)
}
