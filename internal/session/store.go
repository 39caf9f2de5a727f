package session

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/aitrade/internal/apperrors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const namespace = "session"

type Store interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Get(ctx context.Context, sid string) (uuid.UUID, error)
	IsActive(ctx context.Context, sid string) (bool, error)
	Revoke(ctx context.Context, sid string) error
}

type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(sid string) string {
	return namespace + ":" + sid
}

func (s *RedisStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	sid := uuid.NewString()
	if err := s.client.Set(ctx, key(sid), userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (uuid.UUID, error) {
	if sid == "" {
		return uuid.Nil, apperrors.ErrSessionNotFound
	}
	val, err := s.client.Get(ctx, key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}

func (s *RedisStore) IsActive(ctx context.Context, sid string) (bool, error) {
	_, err := s.Get(ctx, sid)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Revoke is idempotent, revoking an unknown session is not an error.
func (s *RedisStore) Revoke(ctx context.Context, sid string) error {
	return s.client.Del(ctx, key(sid)).Err()
}
