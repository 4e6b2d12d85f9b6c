package config

import (
	"fmt"
	"os"
)

// Config holds runtime settings for the stockkeeper CLI.
//
// DataDir contains user.json and the products/ directory. The Max* limits
// bound a single catalog and the account directory.
type Config struct {
	DataDir     string
	MaxQuantity int
	MaxProducts int
	MaxAccounts int
	LogLevel    string
}

// LoadDefaults populates c with the built-in limits.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.MaxQuantity = 200
	c.MaxProducts = 20
	c.MaxAccounts = 4
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, a JSON file (if given) and command-line flags. Later sources
// take precedence over earlier ones. Malformed values panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	cfg.mustValidate()
	return cfg
}

// mustValidate panics unless every limit is positive, whichever layer
// set it.
func (c *Config) mustValidate() {
	limits := []struct {
		name  string
		value int
	}{
		{"max quantity", c.MaxQuantity},
		{"max products", c.MaxProducts},
		{"max accounts", c.MaxAccounts},
	}
	for _, l := range limits {
		if l.value <= 0 {
			panic(fmt.Errorf("%s must be a positive integer, got %d", l.name, l.value))
		}
	}
}
