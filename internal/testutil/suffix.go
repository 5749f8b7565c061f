// Package testutil provides deterministic test doubles for the
// nondeterministic dependencies of the generation pipeline.
package testutil

import (
	"fmt"
	"sync"
)

// SequenceSource is a deterministic ident.SuffixSource for tests.
//
// With scripted suffixes it returns them in order, cycling when
// exhausted. Without a script it returns a counter-derived sequence
// a001, a002, ... so every draw is distinct and predictable.
//
// Unlike the production source, SequenceSource can be Reset so the same
// scenario replays with identical suffixes.
type SequenceSource struct {
	mu       sync.Mutex
	suffixes []string
	next     int
}

// NewSequenceSource creates a source that yields the given suffixes in
// order. With no arguments it yields the counter-derived sequence.
func NewSequenceSource(suffixes ...string) *SequenceSource {
	return &SequenceSource{suffixes: suffixes}
}

// Next returns the next scripted or counter-derived suffix.
func (s *SequenceSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if len(s.suffixes) > 0 {
		return s.suffixes[(s.next-1)%len(s.suffixes)]
	}
	return fmt.Sprintf("a%03d", s.next)
}

// Reset rewinds the source. The next call to Next repeats the sequence
// from the start.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
}
