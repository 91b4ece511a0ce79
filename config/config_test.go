package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_ADDR", "BCRYPT_COST", "MIGRATE_ON_START", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Nil(t, InitRedis(cfg))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BIND_ADDRESS", "127.0.0.1")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "quiz",
		DBPassword: "p@ss word",
		DBName:     "quizhub",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://quiz:p%40ss%20word@db:5432/quizhub?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://override/db"
	assert.Equal(t, "postgres://override/db", cfg.DSN())
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZHUB_DOTENV_PROBE=from-file\nQUIZHUB_DOTENV_KEEP=from-file\n"), 0o600))
	t.Setenv("QUIZHUB_DOTENV_KEEP", "from-env")
	t.Cleanup(func() { os.Unsetenv("QUIZHUB_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("QUIZHUB_DOTENV_PROBE"))
	assert.Equal(t, "from-env", os.Getenv("QUIZHUB_DOTENV_KEEP"))
}
