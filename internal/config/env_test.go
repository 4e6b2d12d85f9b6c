package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("STOCKKEEPER_DATA_DIR", "/var/lib/stock")
	t.Setenv("STOCKKEEPER_MAX_QUANTITY", "500")
	t.Setenv("STOCKKEEPER_MAX_PRODUCTS", "30")
	t.Setenv("STOCKKEEPER_MAX_ACCOUNTS", "6")
	t.Setenv("STOCKKEEPER_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, filepath.Join(t.TempDir(), "absent.env"))

	want := &Config{DataDir: "/var/lib/stock", MaxQuantity: 500, MaxProducts: 30, MaxAccounts: 6, LogLevel: "debug"}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_DotenvFile(t *testing.T) {
	// Registered so t.Setenv restores the original (unset) state afterwards.
	t.Setenv("STOCKKEEPER_MAX_ACCOUNTS", "")
	require.NoError(t, os.Unsetenv("STOCKKEEPER_MAX_ACCOUNTS"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOCKKEEPER_MAX_ACCOUNTS=8\n"), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, path)

	assert.Equal(t, 8, cfg.MaxAccounts)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestParseEnv_ProcessEnvWinsOverDotenv(t *testing.T) {
	t.Setenv("STOCKKEEPER_LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOCKKEEPER_LOG_LEVEL=debug\n"), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, path)

	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseEnv_InvalidNumberPanics(t *testing.T) {
	t.Setenv("STOCKKEEPER_MAX_QUANTITY", "lots")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg, filepath.Join(t.TempDir(), "absent.env")) })
}

func TestParseEnv_NonPositiveNumberPanics(t *testing.T) {
	t.Setenv("STOCKKEEPER_MAX_PRODUCTS", "0")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg, filepath.Join(t.TempDir(), "absent.env")) })
}
