package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "sessao:"

// RedisStore keeps sessions in Redis with a TTL, so concurrent instances of
// the server share one session space.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed session store around an existing
// client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Create binds the identity to a fresh opaque token and returns it.
func (s *RedisStore) Create(identity Identity) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to encode session payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token. Expiry is handled by Redis itself.
func (s *RedisStore) Get(token string) (Identity, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return Identity{}, false, nil
	}
	if err != nil {
		return Identity{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return Identity{}, false, fmt.Errorf("failed to decode session payload: %w", err)
	}
	return identity, true, nil
}

// Delete invalidates a token. Unknown tokens are ignored.
func (s *RedisStore) Delete(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
