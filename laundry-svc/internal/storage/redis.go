package storage

import (
	"context"
	"encoding/json"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps admin sessions as JSON blobs under a token key
// with a TTL; an expired key is indistinguishable from a never-issued token.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, token string, user domain.AdminUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.SessionKey(token), payload, s.TTL).Err()
}

func (s *RedisSessionStore) GetSession(ctx context.Context, token string) (*domain.AdminUser, error) {
	raw, err := s.Client.Get(ctx, s.SessionKey(token)).Bytes()
	if err != nil {
		return nil, err
	}
	var user domain.AdminUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.SessionKey(token)).Err()
}
