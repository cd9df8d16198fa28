package engine

import (
	"hash/fnv"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"
)

// SeededRNG is the default RNGPort implementation. Named streams are
// derived from the base seed so two streams with the same seed stay
// independent.
type SeededRNG struct{}

// NewSeededRNG creates the default random source factory
func NewSeededRNG() *SeededRNG {
	return &SeededRNG{}
}

// SeededSource creates a deterministic source for a named stream
func (r *SeededRNG) SeededSource(name string, seed int64) rand.Source {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.NewSource(uint64(seed) ^ h.Sum64())
}

// entropyCounter keeps sources created within the same clock tick distinct
var entropyCounter uint64

// EntropySource creates a time-seeded source
func (r *SeededRNG) EntropySource() rand.Source {
	c := atomic.AddUint64(&entropyCounter, 1)
	return rand.NewSource(uint64(time.Now().UnixNano()) + c*0x9e3779b97f4a7c15)
}
