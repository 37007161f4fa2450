package noise

import "github.com/OCharnyshevich/tilegen/pkg/rng"

const (
	skew2   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
)

// Simplex is 2D simplex noise over the same seeded lattice as Perlin.
type Simplex struct {
	lattice
}

// NewSimplex shuffles a permutation table with r.
func NewSimplex(r *rng.Xoroshiro128PP) *Simplex {
	return &Simplex{lattice: newLattice(r)}
}

// Noise2D returns simplex noise at (x, y) in the range [0, 1].
func (s *Simplex) Noise2D(x, y float64) float64 {
	sk := (x + y) * skew2
	i, j := fastFloor(x+sk), fastFloor(y+sk)
	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Middle corner: lower or upper triangle of the skewed cell.
	mid := [2]int{0, 1}
	if x0 > y0 {
		mid = [2]int{1, 0}
	}

	var sum float64
	for k, c := range [3][2]int{{0, 0}, mid, {1, 1}} {
		dx := x0 - float64(c[0]) + float64(k)*unskew2
		dy := y0 - float64(c[1]) + float64(k)*unskew2
		if a := 0.5 - dx*dx - dy*dy; a > 0 {
			a *= a
			sum += a * a * grad(s.hash(i+c[0], j+c[1]), dx, dy)
		}
	}
	return clamp01((70*sum + 1) * 0.5)
}
