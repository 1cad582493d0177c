package storage

import (
	"context"
	"sort"
	"sync"

	errgo "gopkg.in/errgo.v1"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	sweeps      map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	if s.sweeps == nil {
		s.sweeps = make(map[string][]byte)
	}
	return nil
}

// SaveSweep stores the encoded run so that later reads see a snapshot, not a
// shared slice.
func (s *MemoryStore) SaveSweep(_ context.Context, run SweepRun) error {
	payload, err := EncodeSweep(run)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errgo.New("store is not initialized")
	}
	s.sweeps[run.ID] = payload
	return nil
}

func (s *MemoryStore) GetSweep(_ context.Context, id string) (SweepRun, bool, error) {
	s.mu.RLock()
	payload, ok := s.sweeps[id]
	s.mu.RUnlock()

	if !ok {
		return SweepRun{}, false, nil
	}
	run, err := DecodeSweep(payload)
	if err != nil {
		return SweepRun{}, false, errgo.Mask(err, errgo.Is(ErrVersionMismatch))
	}
	return run, true, nil
}

func (s *MemoryStore) ListSweeps(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sweeps))
	for id := range s.sweeps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
