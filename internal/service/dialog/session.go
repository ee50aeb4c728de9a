package dialog

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"
)

const sessionShards = 32

type sessionEntry struct {
	state   ConversationState
	touched time.Time
}

type sessionShard struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// Store holds one ConversationState per user id with per-key mutual
// exclusion. Entries idle longer than the TTL are evicted by the janitor,
// returning the user to the idle state.
type Store struct {
	shards [sessionShards]*sessionShard
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewStore creates a session store. A non-positive ttl disables expiry.
func NewStore(log *slog.Logger, ttl time.Duration) *Store {
	s := &Store{
		ttl: ttl,
		now: time.Now,
		log: log.With("component", "session_store"),
	}
	for i := range s.shards {
		s.shards[i] = &sessionShard{entries: make(map[string]*sessionEntry)}
	}
	return s
}

func (s *Store) shard(userID string) *sessionShard {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return s.shards[h.Sum32()%sessionShards]
}

// Update runs fn against the user's state under the shard lock, creating an
// idle state on first touch. fn must not block.
func (s *Store) Update(userID string, fn func(*ConversationState)) {
	sh := s.shard(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[userID]
	if !ok {
		e = &sessionEntry{state: ConversationState{UserID: userID, Mode: ModeIdle}}
		sh.entries[userID] = e
	}
	fn(&e.state)
	e.touched = s.now()
}

// Get returns a snapshot of the user's state, if any.
func (s *Store) Get(userID string) (ConversationState, bool) {
	sh := s.shard(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.entries[userID]
	if !ok {
		return ConversationState{}, false
	}
	return e.state, true
}

// Clear drops the user's state entirely.
func (s *Store) Clear(userID string) {
	sh := s.shard(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.entries, userID)
}

// RunJanitor evicts expired sessions every interval until ctx is cancelled.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.evictExpired(); evicted > 0 {
				s.log.Debug("evicted idle sessions", "count", evicted)
			}
		}
	}
}

func (s *Store) evictExpired() int {
	deadline := s.now().Add(-s.ttl)
	evicted := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for id, e := range sh.entries {
			if e.touched.Before(deadline) {
				delete(sh.entries, id)
				evicted++
			}
		}
		sh.mu.Unlock()
	}
	return evicted
}
