package session

import (
	"errors"
	"sync"
	"time"

	"bookbrowser/internal/catalog"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Session is one user's browsing state. Dispatches on a session are
// serialized so its controller keeps a single writer.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	controller *catalog.Controller
}

// Snapshot is a consistent copy of a session's state and view.
type Snapshot struct {
	ID    string              `json:"id"`
	State catalog.QueryState  `json:"state"`
	View  catalog.DerivedView `json:"view"`
}

func newSession(id string, controller *catalog.Controller, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, controller: controller}
}

func (s *Session) dispatch(a catalog.Action) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.Dispatch(a)
	return s.snapshotLocked()
}

func (s *Session) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{ID: s.ID, State: s.controller.State(), View: s.controller.View()}
}
