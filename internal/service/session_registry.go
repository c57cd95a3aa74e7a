package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "session:"

	// Matches the cookie lifetime.
	sessionTTL = time.Hour
)

// SessionRegistry tracks which users currently hold a session cookie. The
// registry is best-effort operational state: the cookie plus the usuario row
// stay the source of truth, so registry failures are logged and swallowed
// instead of failing the request.
type SessionRegistry interface {
	Put(ctx context.Context, userID uint)
	Refresh(ctx context.Context, userID uint)
	Drop(ctx context.Context, userID uint)
}

type redisSessionRegistry struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisSessionRegistry(client *redis.Client, log *logrus.Logger) SessionRegistry {
	return &redisSessionRegistry{client: client, log: log}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

func (r *redisSessionRegistry) Put(ctx context.Context, userID uint) {
	if err := r.client.Set(ctx, sessionKey(userID), "active", sessionTTL).Err(); err != nil {
		r.log.Warnf("Failed to record session for user %d: %+v", userID, err)
	}
}

func (r *redisSessionRegistry) Refresh(ctx context.Context, userID uint) {
	if err := r.client.Expire(ctx, sessionKey(userID), sessionTTL).Err(); err != nil {
		r.log.Warnf("Failed to refresh session for user %d: %+v", userID, err)
	}
}

func (r *redisSessionRegistry) Drop(ctx context.Context, userID uint) {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		r.log.Warnf("Failed to drop session for user %d: %+v", userID, err)
	}
}
