package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv сбрасывает переменные, влияющие на Load, и указывает несуществующий .env
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_DRIVER", "DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD",
		"DATABASE_DBNAME", "DATABASE_SSLMODE", "DATABASE_SQLITE_PATH", "SERVER_PORT",
		"REDIS_ENABLED", "REDIS_ADDRS", "REDIS_ADDR", "EVENTS_ENABLED", "EVENTS_TOPIC", "EVENTS_KAFKA_BROKERS",
		"RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_WINDOW_SEC",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_DefaultsFallBackToSQLite(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 60, cfg.RateLimit.WindowSec)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "trivia.questions", cfg.Events.Topic)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_PostgresFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_USER", "trivia")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_DBNAME", "trivia")
	t.Setenv("EVENTS_KAFKA_BROKERS", "kafka1:9092,kafka2:9092")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=db port=5432 user=trivia password=secret dbname=trivia sslmode=disable", cfg.Database.PostgresConnectionString())
	assert.Equal(t, "postgres://trivia:secret@db:5432/trivia?sslmode=disable", cfg.Database.PostgresURL())
	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, cfg.Events.KafkaBrokers)
}

func TestLoad_ConfigFileAndEnvOverride(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
database:
  driver: sqlite
  sqlite_path: /tmp/trivia.db
rate_limit:
  max_requests: 5
`), 0o600))
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/trivia.db", cfg.Database.SQLitePath)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestLoad_DotEnv(t *testing.T) {
	isolateEnv(t)
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SERVER_PORT=7000\n"), 0o600))
	t.Setenv("ENV_FILE", envPath)
	t.Cleanup(func() { os.Unsetenv("SERVER_PORT") })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Неполная конфигурация postgres", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DATABASE_DRIVER", "postgres")
		t.Setenv("DATABASE_HOST", "")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("Неизвестный драйвер", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DATABASE_DRIVER", "oracle")

		_, err := Load("")
		assert.Error(t, err)
	})
}
