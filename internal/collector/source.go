package collector

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// Source supplies uniform random draws. It is the only randomness the
// season engine consumes, so a fixed Source makes a season reproducible.
type Source interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

// RandSource is a seeded PCG-backed Source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a deterministic Source for the given seed.
func NewRandSource(seed int64) *RandSource {
	// #nosec G404
	return &RandSource{rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

func (s *RandSource) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// IntN draws an integer uniformly from [lo, hi).
func IntN(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(math.Floor(src.Uniform(0, float64(hi-lo))))
	return min(max(n, lo), hi-1)
}

// ScriptedSource replays fixed values for tests. Each value is a fraction in
// [0, 1) mapped onto the requested range; the script wraps around.
type ScriptedSource struct {
	Fractions []float64
	next      int
}

func (s *ScriptedSource) Uniform(lo, hi float64) float64 {
	if len(s.Fractions) == 0 {
		return lo
	}
	f := s.Fractions[s.next%len(s.Fractions)]
	s.next++
	return lo + f*(hi-lo)
}
