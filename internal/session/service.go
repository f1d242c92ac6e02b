package session

import (
	"context"
	"time"

	"bookbrowser/internal/book"
	"bookbrowser/internal/catalog"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service struct {
	repo    Repository
	dataset book.Dataset
	log     logrus.FieldLogger
}

func NewService(repo Repository, dataset book.Dataset, log logrus.FieldLogger) *Service {
	return &Service{
		repo:    repo,
		dataset: dataset,
		log:     log,
	}
}

// Start opens a session with the default query.
func (s *Service) Start(ctx context.Context) (Snapshot, error) {
	sess := newSession(uuid.NewString(), catalog.NewController(s.dataset), time.Now())
	if err := s.repo.Create(ctx, sess); err != nil {
		return Snapshot{}, err
	}
	s.log.WithField("session_id", sess.ID).Debug("session started")
	return sess.snapshot(), nil
}

func (s *Service) Get(ctx context.Context, id string) (Snapshot, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

// Dispatch applies a to the session and returns the recomputed snapshot.
func (s *Service) Dispatch(ctx context.Context, id string, a catalog.Action) (Snapshot, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}

	if _, ok := a.(catalog.Unrecognized); ok {
		s.log.WithFields(logrus.Fields{
			"session_id": id,
			"action":     a.Type(),
		}).Debug("unrecognized action ignored")
	}

	snap := sess.dispatch(a)
	s.log.WithFields(logrus.Fields{
		"session_id":  id,
		"action":      a.Type(),
		"current":     snap.State.Pagination.Current,
		"total_pages": snap.View.TotalPages,
	}).Debug("action dispatched")
	return snap, nil
}

func (s *Service) End(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RunJanitor removes expired sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.repo.CleanupExpired(ctx)
			if err != nil {
				s.log.WithError(err).Warn("session cleanup failed")
				continue
			}
			if n > 0 {
				s.log.WithField("removed", n).Info("expired sessions removed")
			}
		}
	}
}
