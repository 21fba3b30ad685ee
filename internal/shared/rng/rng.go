// Package rng provides the uniform integer source used by the draw and by
// sparse ticket numbering.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source returns a uniformly distributed int in [0, n). n must be > 0.
type Source interface {
	IntN(n int) int
}

// lockedSource guards a *rand.Rand for concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// New returns a ChaCha8 backed source seeded from crypto/rand. rand.Rand.IntN
// is free of modulo bias.
func New() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return &lockedSource{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeeded returns a deterministic source, for tests and replays.
func NewSeeded(seed uint64) Source {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:8], seed)
	return &lockedSource{r: rand.New(rand.NewChaCha8(s))}
}

// Fixed returns the queued values in order (each taken modulo n), cycling
// when exhausted.
type Fixed struct {
	mu     sync.Mutex
	Values []int
	pos    int
}

func (f *Fixed) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	return v % n
}
