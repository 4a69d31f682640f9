package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_fileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8081"
database:
  host: db
  password: secret
kafka:
  brokers: ["k1:9092", "k2:9092"]
auth:
  jwt_secret: s3cr3t
worker:
  accounting_interval_seconds: 60
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "order-events", cfg.Kafka.OrderEventsTopic)
	assert.Equal(t, 3, cfg.Kafka.PublishAttempts)
	assert.Equal(t, time.Minute, cfg.Worker.AccountingInterval())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 20, cfg.Booking.DefaultPageSize)
	assert.Equal(t, "host=db port=5432 user=airport password=secret dbname=airport sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_envOverrides(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: from-file\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadConfig_missingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-only")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Worker.AccountingInterval())
}

func TestLoadConfig_requiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(writeConfig(t, "http:\n  address: \":8080\"\n"))
	assert.Error(t, err)
}

func TestLogConfig_NewLogger(t *testing.T) {
	assert.NotNil(t, LogConfig{Level: "debug"}.NewLogger())
	assert.NotNil(t, LogConfig{Level: "nonsense"}.NewLogger())
}
