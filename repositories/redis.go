package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// Check-ins only matter for the current day; keep them around a little
// longer so a late-night check-in survives past midnight reloads.
const sessionTTL = 48 * time.Hour

// RedisSessionStore keeps check-in state in Redis.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("mindcare:session:%s", userID)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (*models.CheckInSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.CheckInSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("corrupt session record: %v", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, userID string, session *models.CheckInSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(userID), raw, sessionTTL).Err()
}

// RedisThemeStore keeps the persisted mood theme in Redis.
type RedisThemeStore struct {
	client *redis.Client
}

func NewRedisThemeStore(client *redis.Client) *RedisThemeStore {
	return &RedisThemeStore{client: client}
}

func themeKey(userID string) string {
	return fmt.Sprintf("mindcare:theme:%s", userID)
}

func (s *RedisThemeStore) Get(ctx context.Context, userID string) (wellness.Theme, error) {
	raw, err := s.client.Get(ctx, themeKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return wellness.ThemeNeutral, ErrNotFound
	}
	if err != nil {
		return wellness.ThemeNeutral, err
	}
	return wellness.Theme(raw), nil
}

func (s *RedisThemeStore) Save(ctx context.Context, userID string, theme wellness.Theme) error {
	return s.client.Set(ctx, themeKey(userID), string(theme), 0).Err()
}
