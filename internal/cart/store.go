package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

type redisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Line is the persisted cart entry. The display name is frozen to the
// language active when the product was added; prices are not stored
// here, the catalog stays the source of truth until checkout snapshots
// them.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}

type cartState struct {
	Lines []Line `json:"lines"`
}

// Store persists guest carts in Redis keyed by session, refreshing the
// TTL on every write so an active guest never loses their cart.
type Store struct {
	redis redisStore
	ttl   time.Duration
}

// NewStore builds a cart store backed by the provided Redis client.
func NewStore(redis redisStore, ttl time.Duration) (*Store, error) {
	if redis == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{redis: redis, ttl: ttl}, nil
}

func (s *Store) load(ctx context.Context, sessionID string) (*cartState, error) {
	raw, err := s.redis.Get(ctx, s.redis.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return &cartState{}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var state cartState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt payload is unrecoverable; start the guest fresh.
		return &cartState{}, nil
	}
	return &state, nil
}

func (s *Store) save(ctx context.Context, sessionID string, state *cartState) error {
	if len(state.Lines) == 0 {
		return s.clear(ctx, sessionID)
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.redis.Set(ctx, s.redis.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Store) clear(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, s.redis.CartKey(sessionID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
