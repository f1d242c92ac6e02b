package session

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	CleanupExpired(ctx context.Context) (int, error)
}
