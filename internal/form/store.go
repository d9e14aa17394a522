package form

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

type draftEntry struct {
	draft    *Draft
	lastSeen time.Time
}

// Store keeps in-progress drafts server-side so the multi-section form can
// survive page reloads. Untouched drafts are dropped after the TTL.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
	ttl    time.Duration
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		drafts: make(map[string]*draftEntry),
		ttl:    ttl,
	}
	go s.cleanup()
	return s
}

func (s *Store) Create() (string, *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	d := NewDraft()
	s.drafts[id] = &draftEntry{draft: d, lastSeen: time.Now()}
	return id, d
}

// Update runs fn against the draft under the store lock, which is what makes
// Draft's non-thread-safe methods safe across overlapping requests.
func (s *Store) Update(id string, fn func(*Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drafts[id]
	if !ok {
		return ErrDraftNotFound
	}
	entry.lastSeen = time.Now()
	return fn(entry.draft)
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.drafts {
			if now.Sub(entry.lastSeen) > s.ttl {
				delete(s.drafts, id)
			}
		}
		s.mu.Unlock()
	}
}
