// Package config loads runtime configuration for the stockkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, after an optional .env file in the working directory
//     (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   base data directory
//	-q int      maximum stock quantity per product
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	STOCKKEEPER_DATA_DIR, STOCKKEEPER_MAX_QUANTITY, STOCKKEEPER_MAX_PRODUCTS,
//	STOCKKEEPER_MAX_ACCOUNTS, STOCKKEEPER_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "data_dir": "data",
//	  "max_quantity": 200,
//	  "max_products": 20,
//	  "max_accounts": 4,
//	  "log_level": "info"
//	}
//
// Keys missing from the JSON file leave the earlier value in place.
package config
