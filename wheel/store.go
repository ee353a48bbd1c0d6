package wheel

import (
	"sync"

	"github.com/katalvlaran/trinoise/noise"
)

// Store is a goroutine-safe cache of compiled wheels keyed by base.
// Each base is compiled at most once; subsequent Get calls share the
// same immutable *Wheel, so no cloning is needed on the way out.
type Store struct {
	mu sync.RWMutex
	m  map[int]*Wheel
}

// NewStore creates and initializes an empty Store.
func NewStore() *Store {
	return &Store{m: make(map[int]*Wheel)}
}

// Get returns the wheel for base, compiling it on first use. Options
// are forwarded to the compilation only when it actually happens; a
// cache hit ignores them.
//
// Compilation runs under the write lock, so concurrent Gets for the
// same base block until the single compile finishes rather than racing
// duplicate work.
func (s *Store) Get(base int, opts ...noise.Option) (*Wheel, error) {
	s.mu.RLock()
	w, ok := s.m[base]
	s.mu.RUnlock()
	if ok {
		return w, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok = s.m[base]; ok {
		return w, nil
	}
	w, err := Compile(base, opts...)
	if err != nil {
		return nil, err
	}
	s.m[base] = w

	return w, nil
}

// Cached reports whether a wheel for base is already compiled.
func (s *Store) Cached(base int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.m[base]

	return ok
}

// Bases returns the bases currently held by the store, in no
// particular order.
func (s *Store) Bases() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bases := make([]int, 0, len(s.m))
	for base := range s.m {
		bases = append(bases, base)
	}

	return bases
}

// Evict drops the wheel for base, if present. Shared pointers returned
// by earlier Gets stay valid; wheels are immutable.
func (s *Store) Evict(base int) {
	s.mu.Lock()
	delete(s.m, base)
	s.mu.Unlock()
}
