// Package redis holds the Redis backed adapters.
package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"kwai-ads/internal/config/configs"
	"kwai-ads/internal/core/port"
)

// releaseScript deletes the key only when it still holds our token, so an
// expired lock taken over by another runner is never released by us.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

// PassLock implements port.PassLock with SET NX PX.
type PassLock struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

// NewPassLock creates a lock on cfg.LockKey expiring after cfg.LockTTL.
func NewPassLock(client *goredis.Client, cfg configs.Redis) *PassLock {
	return &PassLock{client: client, key: cfg.LockKey, ttl: cfg.LockTTL}
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Acquire takes the lock if it is free.
func (l *PassLock) Acquire(ctx context.Context) (port.ReleaseFunc, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.client, []string{l.key}, token).Err()
	}, true, nil
}
