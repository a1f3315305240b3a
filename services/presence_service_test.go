package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/logger"
)

func init() {
	logger.IsTest = true
}

func TestPresenceService_Heartbeat(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewPresenceService(client, config.PresenceConfig{TTLSeconds: 60})

	mock.Regexp().ExpectSet("presence:user:user-1", `.*`, 60*time.Second).SetVal("OK")

	require.NoError(t, svc.Heartbeat(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceService_DefaultTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewPresenceService(client, config.PresenceConfig{})

	mock.Regexp().ExpectSet("presence:user:user-1", `.*`, 60*time.Second).SetVal("OK")

	require.NoError(t, svc.Heartbeat(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceService_IsOnline(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewPresenceService(client, config.PresenceConfig{TTLSeconds: 60})

	mock.ExpectExists("presence:user:user-1").SetVal(1)
	mock.ExpectExists("presence:user:user-2").SetVal(0)

	online, err := svc.IsOnline(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, online)

	online, err = svc.IsOnline(context.Background(), "user-2")
	require.NoError(t, err)
	assert.False(t, online)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceService_Disconnect(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewPresenceService(client, config.PresenceConfig{TTLSeconds: 60})

	mock.ExpectDel("presence:user:user-1").SetVal(1)

	require.NoError(t, svc.Disconnect(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceService_OnlineStatus(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewPresenceService(client, config.PresenceConfig{TTLSeconds: 60})

	mock.ExpectExists("presence:user:a").SetVal(1)
	mock.ExpectExists("presence:user:b").SetVal(0)

	status, err := svc.OnlineStatus(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, status["a"])
	assert.False(t, status["b"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitService_CheckLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewRateLimitService(client)

	t.Run("under the limit", func(t *testing.T) {
		mock.ExpectIncr("rate_limit:user-1").SetVal(3)
		mock.ExpectExpire("rate_limit:user-1", time.Minute).SetVal(true)

		allowed, retryAfter, err := svc.CheckLimit(context.Background(), "user-1", 60, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	})

	t.Run("over the limit", func(t *testing.T) {
		mock.ExpectIncr("rate_limit:user-2").SetVal(61)
		mock.ExpectExpire("rate_limit:user-2", time.Minute).SetVal(true)
		mock.ExpectTTL("rate_limit:user-2").SetVal(42 * time.Second)

		allowed, retryAfter, err := svc.CheckLimit(context.Background(), "user-2", 60, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 42*time.Second, retryAfter)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
