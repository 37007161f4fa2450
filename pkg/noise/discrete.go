package noise

import (
	"math/bits"
	"math/rand/v2"

	"github.com/OCharnyshevich/tilegen/pkg/rng"
)

// Discrete is a stateless coordinate hash. The value at (x, y, channel)
// does not depend on how many other values were drawn before it, so passes
// may visit tiles in any order.
type Discrete struct {
	mask uint64
	perm [256]uint8
}

// NewDiscrete draws the output mask and the byte permutation from r.
func NewDiscrete(r rng.Xoroshiro128PP) *Discrete {
	d := &Discrete{mask: r.Next()}
	for i := range d.perm {
		d.perm[i] = uint8(i)
	}
	rand.New(&r).Shuffle(len(d.perm), func(i, j int) {
		d.perm[i], d.perm[j] = d.perm[j], d.perm[i]
	})
	return d
}

// mapOnce substitutes every byte of x, chaining each substituted byte into
// the next so the top byte depends on all four.
func (d *Discrete) mapOnce(x uint32) uint32 {
	b0 := d.perm[uint8(x)]
	b1 := d.perm[uint8(x>>8)^b0]
	b2 := d.perm[uint8(x>>16)^b1]
	b3 := d.perm[uint8(x>>24)^b2]
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
}

// mix is a bijection on uint32; after four rounds every output byte depends
// on every input byte.
func (d *Discrete) mix(x uint32) uint32 {
	for range 4 {
		x = bits.RotateLeft32(d.mapOnce(x), 8)
	}
	return x
}

// Noise returns the 64-bit value at (x, y) on the given channel.
func (d *Discrete) Noise(x, y, channel uint32) uint64 {
	a := d.mix(x)
	b := d.mix(a ^ y)
	c := d.mix(b ^ channel)
	lo := d.mix(c ^ bits.RotateLeft32(a, 8))
	return (uint64(c)<<32 | uint64(lo)) ^ d.mask
}

// Stream walks the channels of one coordinate, giving an ordinary random
// sequence that is still addressed by position.
type Stream struct {
	noise *Discrete
	x, y  uint32
	idx   uint32
}

// NewStream starts a stream at (x, y) from channel idx.
func NewStream(noise *Discrete, x, y, idx uint32) *Stream {
	return &Stream{noise: noise, x: x, y: y, idx: idx}
}

// Next returns the value at the current channel and advances.
func (s *Stream) Next() uint64 {
	v := s.noise.Noise(s.x, s.y, s.idx)
	s.idx++
	return v
}

// Uint64 makes the stream a math/rand/v2 Source.
func (s *Stream) Uint64() uint64 { return s.Next() }
