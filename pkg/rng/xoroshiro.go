// Package rng implements the seeded Xoroshiro128++ generator used by the
// terrain pipeline. See https://prng.di.unimi.it/xoroshiro128plusplus.c.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"
)

// Seed is the 128-bit state a generator starts from.
type Seed [2]uint64

// SeedFromString derives a seed deterministically from s.
func SeedFromString(s string) Seed {
	const (
		p0 = 0xb2209ed48ff3455b
		p1 = 0x9f9a70d28f55f29f
	)
	seed := Seed{0xfcc3a80ff25bae88, 0x78ac504431a5b8e6}
	for i := 0; i < len(s); i++ {
		c := uint64(s[i])
		seed[0] = (seed[0] ^ c) * p0
		seed[1] = (seed[1] ^ c) * p1
	}
	return seed
}

// RandomSeed reads a seed from the system entropy source.
func RandomSeed() (Seed, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Seed{}, fmt.Errorf("read entropy: %w", err)
	}
	return Seed{
		binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
	}, nil
}

// String returns the seed as 32 hex digits.
func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s[0], s[1])
}

// ParseSeed parses the 32 hex digit form produced by String.
func ParseSeed(s string) (Seed, error) {
	if len(s) != 32 {
		return Seed{}, fmt.Errorf("parse seed %q: want 32 hex digits", s)
	}
	hi, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %q: %w", s, err)
	}
	return Seed{hi, lo}, nil
}

// IsZero reports whether s is the all-zero state, which the generator never
// leaves.
func (s Seed) IsZero() bool { return s == Seed{} }

var (
	jump64 = [2]uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05}
	jump96 = [2]uint64{0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3}
)

// Xoroshiro128PP is a Xoroshiro128++ generator. The zero value is not useful;
// create one with New. Not safe for concurrent use.
type Xoroshiro128PP struct {
	s Seed
}

// New returns a generator positioned at the start of seed's sequence.
func New(seed Seed) Xoroshiro128PP {
	return Xoroshiro128PP{s: seed}
}

// State returns the current internal state.
func (x Xoroshiro128PP) State() Seed { return x.s }

// Next advances the generator and returns the next 64-bit output.
func (x *Xoroshiro128PP) Next() uint64 {
	s0, s1 := x.s[0], x.s[1]
	result := bits.RotateLeft64(s0+s1, 17) + s0

	s1 ^= s0
	x.s[0] = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
	x.s[1] = bits.RotateLeft64(s1, 28)
	return result
}

// Uint64 makes the generator a math/rand/v2 Source.
func (x *Xoroshiro128PP) Uint64() uint64 { return x.Next() }

// Jump64 returns a generator 2^64 steps ahead of x. x is unchanged.
func (x Xoroshiro128PP) Jump64() Xoroshiro128PP { return x.jump(jump64) }

// Jump96 returns a generator 2^96 steps ahead of x. x is unchanged.
func (x Xoroshiro128PP) Jump96() Xoroshiro128PP { return x.jump(jump96) }

func (x Xoroshiro128PP) jump(poly [2]uint64) Xoroshiro128PP {
	var s0, s1 uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(1<<uint(b)) != 0 {
				s0 ^= x.s[0]
				s1 ^= x.s[1]
			}
			x.Next()
		}
	}
	return Xoroshiro128PP{s: Seed{s0, s1}}
}

// Split hands out the current stream and moves x 2^96 steps ahead, so the
// returned generator and every later split never overlap.
func (x *Xoroshiro128PP) Split() Xoroshiro128PP {
	out := *x
	*x = x.Jump96()
	return out
}
