package noise

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// ErrNotCalibrated is the panic value of Uniform.At before Calibrate.
var ErrNotCalibrated = errors.New("noise: uniform noise used before calibration")

// DefaultSamples is the calibration sample count used when none is given.
const DefaultSamples = 10000

// calibrationSpan bounds the random coordinates sampled during calibration.
// It covers several periods of the 256-cell permutation table.
const calibrationSpan = 1024.0

// Uniform remaps octave noise through an empirical CDF so that its output is
// uniformly distributed in [0, 1].
type Uniform struct {
	src Source
	rng rng.Xoroshiro128PP

	cdf         []float64
	scale       float64
	octaves     int
	persistence float64
}

// NewUniform wraps src. r drives the calibration sampling.
func NewUniform(src Source, r rng.Xoroshiro128PP) *Uniform {
	return &Uniform{src: src, rng: r}
}

// NewUniformSource builds the named Source from r and wraps it; calibration
// continues on the same stream.
func NewUniformSource(kind string, r rng.Xoroshiro128PP) (*Uniform, error) {
	src, err := NewSource(kind, &r)
	if err != nil {
		return nil, err
	}
	return NewUniform(src, r), nil
}

// Calibrate samples the octave noise at random positions and records the
// sorted results. samples <= 0 selects DefaultSamples.
func (u *Uniform) Calibrate(scale float64, octaves int, persistence float64, samples int) {
	if samples <= 0 {
		samples = DefaultSamples
	}
	u.scale = scale
	u.octaves = octaves
	u.persistence = persistence

	r := rand.New(&u.rng)
	cdf := make([]float64, samples)
	for i := range cdf {
		x := r.Float64() * calibrationSpan
		y := r.Float64() * calibrationSpan
		cdf[i] = Octave(u.src, x, y, octaves, persistence)
	}
	slices.Sort(cdf)
	u.cdf = cdf
}

// Calibrated reports whether Calibrate has run.
func (u *Uniform) Calibrated() bool { return u.cdf != nil }

// At returns the uniform noise value at (x, y). The coordinates are scaled by
// the calibration scale before sampling.
func (u *Uniform) At(x, y float64) float64 {
	if u.cdf == nil {
		panic(ErrNotCalibrated)
	}
	raw := Octave(u.src, x*u.scale, y*u.scale, u.octaves, u.persistence)
	idx := sort.SearchFloat64s(u.cdf, raw)
	return clamp01(float64(idx) / float64(len(u.cdf)))
}
