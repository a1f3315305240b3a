package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/types"
)

func TestHealthService_AllUp(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockDB.ExpectPing()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetVal("PONG")

	svc := NewHealthService(mockDB, redisClient, "1.2.3")
	check := svc.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, check.Status)
	assert.Equal(t, types.HealthStatusUp, check.Components["database"].Status)
	assert.Equal(t, types.HealthStatusUp, check.Components["redis"].Status)
	assert.Equal(t, "1.2.3", check.Version)
	assert.NotEmpty(t, check.Timestamp)
}

func TestHealthService_DatabaseDown(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockDB.ExpectPing().WillReturnError(errors.New("connection refused"))

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetVal("PONG")

	svc := NewHealthService(mockDB, redisClient, "1.2.3")
	check := svc.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDown, check.Status)
	assert.Equal(t, types.HealthStatusDown, check.Components["database"].Status)
	assert.Equal(t, types.HealthStatusUp, check.Components["redis"].Status)
}

func TestHealthService_RedisDown(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockDB.ExpectPing()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetErr(errors.New("connection refused"))

	svc := NewHealthService(mockDB, redisClient, "1.2.3")
	check := svc.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDown, check.Status)
	assert.Equal(t, types.HealthStatusDown, check.Components["redis"].Status)
}
