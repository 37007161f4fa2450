package noise

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// lattice is a doubled 256-entry permutation that hashes integer grid
// points for the gradient noises.
type lattice [512]int

func newLattice(r *rng.Xoroshiro128PP) lattice {
	var p [256]int
	for i := range p {
		p[i] = i
	}
	rand.New(r).Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})

	var l lattice
	for i := range l {
		l[i] = p[i&255]
	}
	return l
}

// hash returns the permutation value of grid point (i, j).
func (l *lattice) hash(i, j int) int {
	return l[l[i&255]+(j&255)]
}

// grad maps the low 4 bits of hash to one of 12 gradient directions and
// returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
