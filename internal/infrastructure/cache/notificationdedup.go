package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"raffle/internal/application/notification"
)

// notificationKeyPrefix is the prefix of winner notification dedup keys.
// Format: raffle:notify:{raffle_id}
const notificationKeyPrefix = "raffle:notify:"

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NotificationDedup is a redis lock per raffle that keeps instances from
// notifying the same winner concurrently.
type NotificationDedup struct {
	client *redis.Client
	tokens sync.Map // raffle id -> token held by this process
}

var _ notification.Deduplicator = (*NotificationDedup)(nil)

func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

func (d *NotificationDedup) buildKey(raffleID string) string {
	return notificationKeyPrefix + raffleID
}

// TryAcquire atomically takes the lock with SetNX. It returns false while
// another holder's key is alive.
func (d *NotificationDedup) TryAcquire(ctx context.Context, raffleID string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()

	acquired, err := d.client.SetNX(ctx, d.buildKey(raffleID), token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire notification lock: %w", err)
	}
	if acquired {
		d.tokens.Store(raffleID, token)
	}
	return acquired, nil
}

func (d *NotificationDedup) Release(ctx context.Context, raffleID string) error {
	token, ok := d.tokens.LoadAndDelete(raffleID)
	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, d.client, []string{d.buildKey(raffleID)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release notification lock: %w", err)
	}
	return nil
}
