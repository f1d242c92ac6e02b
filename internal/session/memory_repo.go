package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	session  *Session
	lastUsed time.Time
}

// MemoryRepo keeps sessions in process memory. A session that has not been
// read for longer than the idle TTL is treated as gone.
type MemoryRepo struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryRepo(ttl time.Duration) *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("create session %s: already exists", s.ID)
	}
	r.sessions[s.ID] = &entry{session: s, lastUsed: r.now()}
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, id)
		return nil, ErrNotFound
	}
	e.lastUsed = now
	return e.session, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// CleanupExpired drops idle sessions and reports how many were removed.
func (r *MemoryRepo) CleanupExpired(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions, expired or not.
func (r *MemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *MemoryRepo) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl
}
