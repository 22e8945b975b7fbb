package session

import (
	"errors"
	"sync"

	"pj_billing/internal/domain/draft"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("draft session not found")

type entry struct {
	mu   sync.Mutex
	flow *draft.Flow
}

// Store keeps in-progress drafts in memory, one flow per session id.
//
// Drafts are session-scoped and discarded on submit or cancel, so nothing here
// touches durable storage. Do serializes access per session: each draft-step
// transition runs single-writer while different sessions proceed concurrently.

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Open starts a new draft session and returns its id.
func (s *Store) Open() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.entries[id] = &entry{flow: draft.NewFlow()}
	s.mu.Unlock()
	return id
}

// Do runs fn against the session's flow under the session lock.
func (s *Store) Do(id string, fn func(*draft.Flow) error) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.flow)
}

// Drop discards a session and its draft.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}
