package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "selection:"

// RedisSessionStore keeps selection sessions as JSON with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.SelectionSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal selection session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache selection session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.SelectionSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selection session: %w", err)
	}
	var session models.SelectionSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse selection session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete selection session: %w", err)
	}
	return nil
}
