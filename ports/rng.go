package ports

import (
	"golang.org/x/exp/rand"
)

// RNGPort provides seeded random sources for deterministic sampling.
// Sources are x/exp/rand so they plug directly into gonum's distuv
// distributions.
type RNGPort interface {
	// SeededSource creates a deterministic source for a named stream.
	// The same (name, seed) pair always yields the same stream.
	SeededSource(name string, seed int64) rand.Source

	// EntropySource creates a non-deterministic source
	EntropySource() rand.Source
}
