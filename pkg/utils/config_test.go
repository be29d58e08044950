package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfigFrom("")
	require.NoError(t, err)

	assert.Equal(t, "concert-venue", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, 15*time.Second, config.App.RequestTimeout)
	assert.Equal(t, StoreMemory, config.Store.Driver)
	assert.True(t, config.Store.SeedFixtures)
	assert.Equal(t, AuthModeSession, config.Auth.Mode)
	assert.Equal(t, 24*time.Hour, config.TokenTTL())
	assert.Equal(t, EventsNone, config.Events.Driver)
	assert.Equal(t, []string{"localhost:9092"}, config.Events.KafkaBrokers)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSTORE_DRIVER=postgres\nAUTH_MODE=jwt\nJWT_SECRET=s3cret\nKAFKA_BROKERS=a:9092, b:9092\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, StorePostgres, config.Store.Driver)
	assert.Equal(t, AuthModeJWT, config.Auth.Mode)
	assert.Equal(t, "s3cret", config.Auth.JWTSecret)
	assert.Equal(t, []string{"a:9092", "b:9092"}, config.Events.KafkaBrokers)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))
	t.Setenv("PORT", "7070")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", config.App.Port)
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := LoadConfigFrom("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}
