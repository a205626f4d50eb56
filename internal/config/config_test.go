package config_test

import (
	"drills/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
evaluator:
  workers: 3
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 3, cfg.Evaluator.Workers)

	// defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5, cfg.Evaluator.MaxAttempts)
	require.Equal(t, 1<<20, cfg.Evaluator.MaxExactResultBits)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "evaluator:\n  maxAttempts: 2\n")
	t.Setenv("EVALUATOR_MAX_ATTEMPTS", "9")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Evaluator.MaxAttempts)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("EVALUATOR_MAX_EXACT_RESULT_BITS", "128")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Evaluator.MaxExactResultBits)
	require.Equal(t, "development", cfg.Environment)
}
