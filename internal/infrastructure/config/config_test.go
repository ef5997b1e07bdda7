package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PlateWise", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, "whisper-1", cfg.AI.TranscriptionModel)
	assert.True(t, cfg.Features.SuggestionImages)
	assert.True(t, cfg.RateLimit.Enable)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMin)
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresAPIKeyInProduction(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.App.Environment = "production"
	cfg.AI.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg.AI.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 5432
	cfg.Database.Username = "platewise"
	cfg.Database.Password = "secret"
	cfg.Database.Database = "platewise"
	cfg.Database.SSLMode = "require"

	assert.Equal(t,
		"host=db.internal port=5432 user=platewise password=secret dbname=platewise sslmode=require",
		cfg.GetDSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "cache.internal"
	cfg.Redis.Port = 6380

	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}
