package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func writeConfig(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)
}

func TestLoad_FromFile(t *testing.T) {
	writeConfig(t, `
server:
  host: "127.0.0.1"
  port: "9000"
llm:
  base_url: "http://localhost:11434/v1"
  api_key: "test-key"
  model: "gpt-4o-mini"
  temperature: 0.2
  timeout_seconds: 30
rag:
  db_path: "corpus.db"
  top_k: 3
log:
  level: "debug"
`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	require.Equal(t, "test-key", cfg.LLM.APIKey)
	require.InDelta(t, 0.2, cfg.LLM.Temperature, 0.001)
	require.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	require.Equal(t, "corpus.db", cfg.RAG.DBPath)
	require.Equal(t, 3, cfg.RAG.TopK)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOnlyOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LLM_API_KEY", "secret-from-env")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "secret-from-env", cfg.LLM.APIKey)
	require.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	writeConfig(t, `
llm:
  api_key: "key-from-file"
`)
	t.Setenv("LLM_API_KEY", "key-from-env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "key-from-env", cfg.LLM.APIKey)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Equal(t, 60, cfg.LLM.TimeoutSeconds)
	require.Equal(t, 4, cfg.RAG.TopK)
	require.Equal(t, "info", cfg.Log.Level)
}
