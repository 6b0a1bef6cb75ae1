package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("interview request not found")

type Repository interface {
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	Update(ctx context.Context, r *Request) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Request, error)
	ListPending(ctx context.Context) ([]PendingRequest, error)
}
