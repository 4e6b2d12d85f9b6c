package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "STOCKKEEPER_"

// parseEnv loads dotenvPath (if it exists) into the process environment,
// without overriding variables that are already set, and then overlays
// STOCKKEEPER_* variables onto cfg.
func parseEnv(cfg *Config, dotenvPath string) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", dotenvPath, err))
	}

	if v, ok := os.LookupEnv(envPrefix + "DATA_DIR"); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	envInt(envPrefix+"MAX_QUANTITY", &cfg.MaxQuantity)
	envInt(envPrefix+"MAX_PRODUCTS", &cfg.MaxProducts)
	envInt(envPrefix+"MAX_ACCOUNTS", &cfg.MaxAccounts)
}

func envInt(name string, dst *int) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		panic(fmt.Errorf("%s must be a positive integer, got %q", name, v))
	}
	*dst = n
}
