package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value.
type JsonConfig struct {
	DataDir     *string `json:"data_dir"`
	MaxQuantity *int    `json:"max_quantity"`
	MaxProducts *int    `json:"max_products"`
	MaxAccounts *int    `json:"max_accounts"`
	LogLevel    *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. Without such a flag nothing happens. Read or decode
// errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.MaxQuantity != nil {
		cfg.MaxQuantity = *jc.MaxQuantity
	}
	if jc.MaxProducts != nil {
		cfg.MaxProducts = *jc.MaxProducts
	}
	if jc.MaxAccounts != nil {
		cfg.MaxAccounts = *jc.MaxAccounts
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
