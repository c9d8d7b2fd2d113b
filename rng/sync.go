package rng

import "sync"

// SyncRng is a thread safe variant of Rng.
type SyncRng struct {
	mu  sync.Mutex
	rng *Rng
}

var _ Source = (*SyncRng)(nil)

// Synchronized wraps the generator. The generator must not be used directly afterward.
func Synchronized(rng *Rng) *SyncRng {
	return &SyncRng{rng: rng}
}

func (s *SyncRng) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Uint64()
}

func (s *SyncRng) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.IntN(n)
}

func (s *SyncRng) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

func (s *SyncRng) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Bool()
}

func (s *SyncRng) Range(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Range(min, max)
}

func (s *SyncRng) Die(sides int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Die(sides)
}

func (s *SyncRng) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(n, swap)
}

func (s *SyncRng) Reseed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Reseed(seed)
}
