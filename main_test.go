package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("PORT", "9100")

	tests := []struct {
		name       string
		dotenvPath func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), ".env") }},
		{"unreadable file", func(t *testing.T) string { return t.TempDir() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, log := loadConfig(tt.dotenvPath(t))
			require.NotNil(t, cfg)
			assert.Equal(t, "9100", cfg.Port)
			assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
		})
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIND_ADDRESS=127.0.0.9\n"), 0o600))
	// t.Setenv restores the previous value; the variable must be absent for
	// the dotenv file to apply.
	t.Setenv("BIND_ADDRESS", "")
	require.NoError(t, os.Unsetenv("BIND_ADDRESS"))

	cfg, _ := loadConfig(path)
	assert.Equal(t, "127.0.0.9", cfg.BindAddress)
}
