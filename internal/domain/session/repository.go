package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("interview session not found")

type Repository interface {
	Create(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
	BestScoreByUser(ctx context.Context, userID uuid.UUID) (*int, error)
}
