package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type memStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	m.data[key] = "1"
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

type memKeyer struct{}

func (memKeyer) AccessSessionKey(accessID string) string { return "session:access:" + accessID }

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	mgr := &Manager{store: store, keyer: memKeyer{}, ttl: time.Hour}

	accessID := NewAccessID()
	if err := mgr.Create(ctx, accessID); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if store.ttls["session:access:"+accessID] != time.Hour {
		t.Fatalf("expected ttl to match access token ttl")
	}

	active, err := mgr.HasSession(ctx, accessID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !active {
		t.Fatal("expected active session")
	}

	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	active, err = mgr.HasSession(ctx, accessID)
	if err != nil {
		t.Fatalf("has session after revoke: %v", err)
	}
	if active {
		t.Fatal("expected session to be gone")
	}
}

func TestSessionRequiresAccessID(t *testing.T) {
	ctx := context.Background()
	mgr := &Manager{store: newMemStore(), keyer: memKeyer{}, ttl: time.Hour}

	if err := mgr.Create(ctx, "  "); err == nil {
		t.Fatal("expected error for blank access id")
	}
	if _, err := mgr.HasSession(ctx, ""); err == nil {
		t.Fatal("expected error for blank access id")
	}
}
