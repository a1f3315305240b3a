package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/travelmate-app/travelmate-backend/logger"
)

func init() {
	logger.IsTest = true
}

func setRequiredEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "travelmate_dev", cfg.Database.Name)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 60, cfg.Presence.TTLSeconds)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "travelmate")
	t.Setenv("REDIS_ADDRESS", "redis.internal:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "travelmate", cfg.Database.Name)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Address)
}

func TestLoadConfig_RejectsShortJWTSecret(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_JWT_SECRET", "too-short")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfig_RejectsInvalidOrigin(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "not a url")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		Name:     "travelmate",
	}

	u := c.URL()
	assert.Contains(t, u, "postgres://postgres:")
	assert.Contains(t, u, "@localhost:5432/travelmate")
	assert.Contains(t, u, "sslmode=disable")
	// password must be URL-escaped
	assert.NotContains(t, u, "p@ss/word")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	original := Config{
		Server: ServerConfig{
			Environment:    EnvProduction,
			Port:           "8080",
			AllowedOrigins: []string{"https://travelmate.app"},
		},
		Database: DatabaseConfig{Host: "db", Port: 5432, User: "tm", Name: "travelmate"},
		Redis:    RedisConfig{Address: "redis:6379", DB: 1},
		Presence: PresenceConfig{TTLSeconds: 90, HeartbeatSeconds: 30},
	}

	raw, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(raw, &decoded))

	assert.Equal(t, original.Server, decoded.Server)
	assert.Equal(t, original.Database, decoded.Database)
	assert.Equal(t, original.Presence, decoded.Presence)
}
