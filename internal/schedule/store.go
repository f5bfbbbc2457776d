package schedule

import (
	"sync"
)

// Store provides access to the boards of a session, keyed by variant name
type Store interface {
	GetBoard(name string) *Board
	GetOrCreate(name string, create func() *Board) *Board
	Update(name string, fn func(*Board) error) error
	Names() []string
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]*Board
	order  []string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		boards: make(map[string]*Board),
	}
}

func (s *MemoryStore) GetBoard(name string) *Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boards[name]
}

// GetOrCreate returns the board called name, building it with create on first use
func (s *MemoryStore) GetOrCreate(name string, create func() *Board) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boards[name]; ok {
		return b
	}
	b := create()
	s.boards[name] = b
	s.order = append(s.order, name)
	return b
}

// Update runs fn against the named board under the write lock
func (s *MemoryStore) Update(name string, fn func(*Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[name]
	if !ok {
		return ErrUnknownBoard
	}
	return fn(b)
}

// Names lists boards in creation order
func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}
