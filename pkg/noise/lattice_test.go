package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

func TestLatticeIsPermutation(t *testing.T) {
	r := rng.New(rng.SeedFromString("lattice"))
	l := newLattice(&r)

	seen := make(map[int]bool, 256)
	for i := 0; i < 256; i++ {
		assert.Equal(t, l[i], l[i+256], "index %d", i)
		seen[l[i]] = true
	}
	assert.Len(t, seen, 256)
}

func TestLatticeHashWraps(t *testing.T) {
	r := rng.New(rng.SeedFromString("wrap"))
	l := newLattice(&r)
	for _, p := range [][2]int{{0, 0}, {255, 255}, {-1, 3}, {17, -200}} {
		assert.Equal(t, l.hash(p[0], p[1]), l.hash(p[0]+256, p[1]-512), "point %v", p)
	}
}

func TestPerlinAndSimplexShareLattice(t *testing.T) {
	r1 := rng.New(rng.SeedFromString("shared"))
	r2 := rng.New(rng.SeedFromString("shared"))
	assert.Equal(t, NewPerlin(&r1).lattice, NewSimplex(&r2).lattice)
}

func TestSimplexOriginIsMidpoint(t *testing.T) {
	src := newSource(t, SourceSimplex, "origin")
	assert.InDelta(t, 0.5, src.Noise2D(0, 0), 1e-12)
}

func TestGradZeroOffset(t *testing.T) {
	for h := 0; h < 16; h++ {
		assert.Zero(t, grad(h, 0, 0))
	}
}
