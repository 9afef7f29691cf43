package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "ollama", cfg.AIProvider)
	require.Equal(t, "llama3.2", cfg.OllamaModel)
	require.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	require.Equal(t, 60*time.Second, cfg.AITimeout)
	require.Equal(t, 1, cfg.AIRetryAttempts)
	require.Equal(t, "none", cfg.CacheType)
	require.False(t, cfg.MessageStrict)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("AI_RETRY_ATTEMPTS", "3")
	t.Setenv("MESSAGE_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "mistral", cfg.OllamaModel)
	require.Equal(t, 3, cfg.AIRetryAttempts)
	require.True(t, cfg.MessageStrict)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("MESSAGE_LANG=fr\nCACHE_TYPE=memory\n"),
		0o600,
	))
	t.Cleanup(func() {
		os.Unsetenv("MESSAGE_LANG")
		os.Unsetenv("CACHE_TYPE")
	})

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "fr", cfg.MessageLang)
	require.Equal(t, "memory", cfg.CacheType)
}

func TestLoad_InvalidInt(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AI_TIMEOUT_SECONDS", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "AI_TIMEOUT_SECONDS")
}
