package storage

import (
	"context"
	"testing"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newSessionStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedisSessionStore(client, time.Hour), server
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()

	user := domain.AdminUser{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: "admin"}
	assert.NoError(t, store.SaveSession(ctx, "token-1", user))

	got, err := store.GetSession(ctx, "token-1")
	assert.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestSessionUnknownToken(t *testing.T) {
	store, _ := newSessionStore(t)

	_, err := store.GetSession(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSessionDelete(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()

	user := domain.AdminUser{ID: "1", Role: "admin"}
	assert.NoError(t, store.SaveSession(ctx, "token-1", user))
	assert.NoError(t, store.DeleteSession(ctx, "token-1"))

	_, err := store.GetSession(ctx, "token-1")
	assert.Error(t, err)
}

func TestSessionExpires(t *testing.T) {
	store, server := newSessionStore(t)
	ctx := context.Background()

	user := domain.AdminUser{ID: "1", Role: "admin"}
	assert.NoError(t, store.SaveSession(ctx, "token-1", user))

	server.FastForward(2 * time.Hour)

	_, err := store.GetSession(ctx, "token-1")
	assert.Error(t, err)
}
