package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setServerEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/scentmatch")
	t.Setenv("VOYAGE_AI_API_KEY", "voyage-test-key")
	t.Setenv("JWT_SECRET", "test-secret")

	os.Unsetenv("SUPABASE_CONNECTION_STRING") //nolint:errcheck // test cleanup
	os.Unsetenv("REDIS_URL")                  //nolint:errcheck // test cleanup
	os.Unsetenv("OPENAI_API_KEY")             //nolint:errcheck // test cleanup
	os.Unsetenv("ENVIRONMENT")                //nolint:errcheck // test cleanup
}

// the server boots without Redis, so REDIS_URL must not be required
func TestLoadEnvironmentVariables_RedisOptional(t *testing.T) {
	setServerEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadEnvironmentVariables_RequiresDatabase(t *testing.T) {
	setServerEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}

func TestLoadEnvironmentVariables_RequiresJWTSecret(t *testing.T) {
	setServerEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadEnvironmentVariables()

	assert.Error(t, err)
}

// the data tooling needs no JWT secret, Redis, or AI keys
func TestLoadDataEnvironment_DatabaseOnly(t *testing.T) {
	setServerEnv(t)
	t.Setenv("VOYAGE_AI_API_KEY", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadDataEnvironment()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/scentmatch", cfg.DatabaseURL)
}

func TestLoadDataEnvironment_RequiresDatabase(t *testing.T) {
	setServerEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := LoadDataEnvironment()

	assert.Error(t, err)
}
