package ident

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// SuffixLen is the number of characters in a generated suffix.
const SuffixLen = 4

// suffixAlphabet is the 36-symbol suffix alphabet. Four characters give
// 36^4 (about 1.68M) combinations, which makes collisions statistically
// negligible for a single project corpus. There is no structural
// uniqueness guarantee.
const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SuffixSource produces identifier suffixes. Implementations must return
// exactly SuffixLen characters from the a-z0-9 alphabet. The source is an
// explicit dependency, never implicit global state, so that seeded runs
// are reproducible end to end.
type SuffixSource interface {
	Next() string
}

// RandomSuffixSource draws suffixes uniformly and independently from the
// suffix alphabet. Safe for concurrent use.
type RandomSuffixSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSuffixSource creates a source seeded from the operating system
// entropy pool.
func NewSuffixSource() *RandomSuffixSource {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("reading suffix seed: %w", err))
	}
	return &RandomSuffixSource{rng: rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))}
}

// NewSeededSuffixSource creates a fully deterministic source. Two sources
// built from the same seed produce identical suffix sequences.
func NewSeededSuffixSource(seed uint64) *RandomSuffixSource {
	return &RandomSuffixSource{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Next returns the next SuffixLen-character suffix.
func (s *RandomSuffixSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var buf [SuffixLen]byte
	for i := range buf {
		buf[i] = suffixAlphabet[s.rng.IntN(len(suffixAlphabet))]
	}
	return string(buf[:])
}
