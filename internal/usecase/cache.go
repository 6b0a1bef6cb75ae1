package usecase

import (
	"context"
	"time"
)

// Cache is the JSON cache surface usecases share for interview
// results and unread-notification counters. The Redis implementation
// degrades to a no-op when unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
