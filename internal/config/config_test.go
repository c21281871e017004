package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9090"
  jwt_signing_key: file-secret
  allowed_cors_domains:
    - https://campus.gg
postgres:
  user: events
  dbname: events_test
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values and defaults", func(t *testing.T) {
		conf, err := Load(writeConfig(t, testConfig))
		require.NoError(t, err)

		assert.Equal(t, EnvTest, conf.API.Environment)
		assert.Equal(t, "9090", conf.API.Port)
		assert.Equal(t, "file-secret", conf.API.JWTSigningKey)
		assert.Equal(t, []string{"https://campus.gg"}, conf.API.AllowedCORSDomains)
		assert.Equal(t, 24*time.Hour, conf.API.JWTTTL)
		assert.Equal(t, 10*time.Minute, conf.API.TokenRefreshInterval)
		assert.Equal(t, "token", conf.API.AuthCookieName)
		assert.Equal(t, "debug", conf.Gin.Mode)
		assert.Equal(t, "@every 30s", conf.PageViews.FlushSchedule)
		assert.Equal(t,
			"host=localhost port=5432 user=events password= dbname=events_test sslmode=disable",
			conf.Postgres.DSN(),
		)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("API_PORT", "7070")
		t.Setenv("API_JWT_SIGNING_KEY", "env-secret")
		t.Setenv("POSTGRES_PASSWORD", "hunter2")
		t.Setenv("PAGE_VIEWS_FLUSH_SCHEDULE", "@every 5s")

		conf, err := Load(writeConfig(t, testConfig))
		require.NoError(t, err)

		assert.Equal(t, "7070", conf.API.Port)
		assert.Equal(t, "env-secret", conf.API.JWTSigningKey)
		assert.Equal(t, "hunter2", conf.Postgres.Password)
		assert.Equal(t, "@every 5s", conf.PageViews.FlushSchedule)
	})

	t.Run("missing signing key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api:\n  environment: test\n"))
		assert.ErrorIs(t, err, errMissingJWTSigningKey)
	})

	t.Run("unknown environment", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api:\n  environment: staging\n  jwt_signing_key: x\n"))
		assert.ErrorIs(t, err, errInvalidEnvironment)
	})

	t.Run("token must outlive the refresh interval", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api:\n  jwt_signing_key: x\n  jwt_ttl: 5m\n"))
		assert.ErrorIs(t, err, errInvalidJWTTTL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}
