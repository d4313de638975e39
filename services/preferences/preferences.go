// Package preferences stores the two persisted guest settings, locale
// and the onboarding flag, in Redis.
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"miohost/models"
)

// prefsTTL keeps settings for the length of a long stay; keys refresh
// on every write.
const prefsTTL = 30 * 24 * time.Hour

// Service reads and writes guest preferences.
type Service interface {
	Get(ctx context.Context, guestID string) (models.Preferences, error)
	Set(ctx context.Context, guestID string, prefs models.Preferences) error
}

type redisService struct {
	client *redis.Client
}

// NewRedisService returns a Service backed by the given Redis client.
func NewRedisService(client *redis.Client) Service {
	return &redisService{client: client}
}

func prefsKey(guestID string) string {
	return fmt.Sprintf("prefs:%s", guestID)
}

// Get returns the stored preferences, or the house defaults (German,
// not onboarded) when none exist.
func (s *redisService) Get(ctx context.Context, guestID string) (models.Preferences, error) {
	defaults := models.Preferences{Locale: models.LocaleDE}

	data, err := s.client.Get(ctx, prefsKey(guestID)).Result()
	if err == redis.Nil {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("preferences: get %s: %w", guestID, err)
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return defaults, fmt.Errorf("preferences: decode %s: %w", guestID, err)
	}
	prefs.Locale = models.ParseLocale(string(prefs.Locale))
	return prefs, nil
}

// Set stores the preferences and refreshes the TTL.
func (s *redisService) Set(ctx context.Context, guestID string, prefs models.Preferences) error {
	prefs.Locale = models.ParseLocale(string(prefs.Locale))
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("preferences: encode %s: %w", guestID, err)
	}
	if err := s.client.Set(ctx, prefsKey(guestID), data, prefsTTL).Err(); err != nil {
		return fmt.Errorf("preferences: set %s: %w", guestID, err)
	}
	return nil
}
