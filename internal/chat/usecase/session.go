package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"concierge-router/internal/model"
)

// sessionStore keeps recent turns per session; idle sessions expire.
type sessionStore struct {
	mu       sync.Mutex
	cache    *expirable.LRU[string, []model.Turn]
	maxTurns int
}

func newSessionStore(size int, ttl time.Duration, maxTurns int) *sessionStore {
	return &sessionStore{
		cache:    expirable.NewLRU[string, []model.Turn](size, nil, ttl),
		maxTurns: maxTurns,
	}
}

// history returns a copy of the session's turns, oldest first.
func (s *sessionStore) history(id string) []model.Turn {
	turns, ok := s.cache.Get(id)
	if !ok {
		return nil
	}
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}

func (s *sessionStore) append(id string, turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _ := s.cache.Get(id)
	merged := make([]model.Turn, 0, len(existing)+len(turns))
	merged = append(merged, existing...)
	merged = append(merged, turns...)
	if len(merged) > s.maxTurns {
		merged = merged[len(merged)-s.maxTurns:]
	}
	s.cache.Add(id, merged)
}

func (s *sessionStore) clear(id string) {
	s.cache.Remove(id)
}
