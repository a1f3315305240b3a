package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelmate-app/travelmate-backend/config"
)

const presenceKeyPrefix = "presence:user:"

// PresenceService tracks which users currently have a live planning session.
// Presence is a Redis key with a TTL; the websocket heartbeat refreshes it
// and expiry is the disconnect signal.
type PresenceService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewPresenceService(redisClient *redis.Client, cfg config.PresenceConfig) *PresenceService {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &PresenceService{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Heartbeat marks the user present for another TTL window.
func (s *PresenceService) Heartbeat(ctx context.Context, userID string) error {
	key := presenceKeyPrefix + userID
	if err := s.redis.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), s.ttl).Err(); err != nil {
		return fmt.Errorf("refreshing presence for %s: %w", userID, err)
	}
	return nil
}

// Disconnect removes the presence marker immediately rather than waiting for
// the TTL to lapse.
func (s *PresenceService) Disconnect(ctx context.Context, userID string) error {
	if err := s.redis.Del(ctx, presenceKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("clearing presence for %s: %w", userID, err)
	}
	return nil
}

// IsOnline reports whether the user has an unexpired presence marker.
func (s *PresenceService) IsOnline(ctx context.Context, userID string) (bool, error) {
	n, err := s.redis.Exists(ctx, presenceKeyPrefix+userID).Result()
	if err != nil {
		return false, fmt.Errorf("checking presence for %s: %w", userID, err)
	}
	return n > 0, nil
}

// OnlineStatus resolves presence for a batch of users in one round trip.
func (s *PresenceService) OnlineStatus(ctx context.Context, userIDs []string) (map[string]bool, error) {
	status := make(map[string]bool, len(userIDs))
	if len(userIDs) == 0 {
		return status, nil
	}

	pipe := s.redis.Pipeline()
	cmds := make(map[string]*redis.IntCmd, len(userIDs))
	for _, id := range userIDs {
		cmds[id] = pipe.Exists(ctx, presenceKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("resolving presence batch: %w", err)
	}

	for id, cmd := range cmds {
		status[id] = cmd.Val() > 0
	}
	return status, nil
}
