package usecase

import (
	"context"
	"errors"
	"log"

	"talentmate/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationCreator is the narrow surface other usecases need to
// emit notifications.
type NotificationCreator interface {
	Create(ctx context.Context, n *notification.Notification)
}

// NotificationPusher delivers a stored notification to connected
// websocket clients. Delivery is best effort.
type NotificationPusher interface {
	Push(userID uuid.UUID, n notification.Notification)
}

type NotificationUsecase interface {
	NotificationCreator
	List(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Notifications struct {
	repo   notification.Repository
	pusher NotificationPusher
	cache  Cache
	logger *log.Logger
}

func NewNotificationUsecase(repo notification.Repository, pusher NotificationPusher, cache Cache, logger *log.Logger) *Notifications {
	if logger == nil {
		logger = log.Default()
	}
	return &Notifications{repo: repo, pusher: pusher, cache: cache, logger: logger}
}

// Create stores and pushes a notification. Failures are logged, not
// propagated: a lost notification never fails the request that
// produced it.
func (u *Notifications) Create(ctx context.Context, n *notification.Notification) {
	if err := u.repo.Create(ctx, n); err != nil {
		u.logger.Printf("Notification | create failed user=%s type=%s err=%v", n.UserID, n.Type, err)
		return
	}
	u.invalidateUnread(ctx, n.UserID)
	if u.pusher != nil {
		u.pusher.Push(n.UserID, *n)
	}
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error) {
	out, err := u.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// CountUnread serves the badge poll from the cache when it can; the
// counter is invalidated on every write that changes it.
func (u *Notifications) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	key := unreadCountKey(userID)
	if u.cache != nil {
		var cached int
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	n, err := u.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, n, 0); err != nil {
			u.logger.Printf("Notification | unread cache set failed user=%s err=%v", userID, err)
		}
	}
	return n, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	err := u.repo.MarkRead(ctx, userID, id)
	if errors.Is(err, notification.ErrNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return ErrInternal
	}
	u.invalidateUnread(ctx, userID)
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := u.repo.MarkAllRead(ctx, userID); err != nil {
		return ErrInternal
	}
	u.invalidateUnread(ctx, userID)
	return nil
}

func (u *Notifications) invalidateUnread(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, unreadCountKey(userID)); err != nil {
		u.logger.Printf("Notification | unread cache invalidate failed user=%s err=%v", userID, err)
	}
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread:" + userID.String()
}
