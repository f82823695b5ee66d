// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the durable key-value slot a session's cart lives in.
// One slot per session, last-writer-wins; mutations are serialized per
// session so no locking is needed.
type Store interface {
	// Load returns the saved cart, or an empty cart when the slot is
	// absent or holds an unreadable payload. It only fails on transport
	// errors.
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
}

// RedisStore keeps each session's cart as a JSON blob under one key
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed cart store. Carts expire after ttl
// of inactivity; every save refreshes the clock.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load reads the session's cart slot
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return emptyCart(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return decodeCart(sessionID, []byte(data)), nil
}

// Save overwrites the session's cart slot
func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	data, err := encodeCart(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(c.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func emptyCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
