// Package sampling provides deterministic, explicitly seeded randomness
// handles.
//
// Every randomized operation in this module takes a *[Source] argument.
// There is no package-level generator and no process-wide reseeding: two
// Sources built from the same seed produce identical streams regardless of
// how draws on other Sources are interleaved, so seeded results remain
// reproducible per handle even across concurrent workers, as long as each
// worker owns its Source.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Seed is the seed of a [Source].
type Seed = [32]byte

// Source is a deterministic pseudo-random source seeded at construction.
// A Source is not safe for concurrent use; derive one Source per worker
// with [Source.NewSource].
type Source struct {
	seed Seed
	*mrand.Rand
}

// NewSeed samples a fresh cryptographically random [Seed].
func NewSeed() (seed Seed) {
	if _, err := rand.Read(seed[:]); err != nil {
		// Sanity check: crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	return
}

// NewSource instantiates a new [Source] from the provided seed.
func NewSource(seed Seed) *Source {
	return &Source{
		seed: seed,
		Rand: mrand.New(mrand.NewChaCha8(seed)),
	}
}

// Seed returns the seed used to instantiate the receiver.
func (s *Source) Seed() Seed {
	return s.seed
}

// NewSource derives a child [Source] seeded from the receiver's stream.
// The child's subsequent draws are independent of later draws on the parent.
func (s *Source) NewSource() *Source {
	var seed Seed
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], s.Uint64())
	}
	return NewSource(seed)
}
