package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "in_memory": true, "mail_from": "jobs@example.com"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.InMemory)
	assert.Equal(t, "jobs@example.com", cfg.MailFrom)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("MAIL_FROM", "env@example.com")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	assert.Equal(t, "env@example.com", cfg.MailFrom)
}

func TestFromEnv_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg := &Config{Port: 9000}
	cfg.FromEnv()

	assert.Equal(t, 9000, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := &Config{InMemory: true}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Port)
	assert.NotEmpty(t, cfg.MailFrom)

	cfg = &Config{Port: 8080}
	assert.Error(t, cfg.Validate(), "database URL required without in-memory store")

	cfg = &Config{Port: -1, InMemory: true}
	assert.Error(t, cfg.Validate())
}
