// Package redis holds the refresh-session registry. A refresh token is only
// honored while its session ID is present here, which gives logout real
// revocation semantics on top of stateless JWTs.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Sessions struct {
	client *redis.Client
}

func New(ctx context.Context, addr, password string, db int) (*Sessions, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis.New: ping: %w", err)
	}

	return &Sessions{client: client}, nil
}

func (s *Sessions) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("redis.Sessions.Close: %w", err)
	}
	return nil
}

// Put registers a session ID; the entry expires with the refresh token.
func (s *Sessions) Put(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis.Sessions.Put: %w", err)
	}
	return nil
}

// Revoke removes a session ID. Revoking an unknown session is a no-op.
func (s *Sessions) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis.Sessions.Revoke: %w", err)
	}
	return nil
}

// Active reports whether a session ID is still registered.
func (s *Sessions) Active(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis.Sessions.Active: %w", err)
	}
	return n > 0, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
