package config

import (
	"flag"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   base data directory
//	-q int      maximum stock quantity per product
//	-l string   log level
//
// Only these flags are picked out of args (see flagx.FilterArgs), so the
// -c/-config flag handled by parseJson does not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-q", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "base data directory")
	fs.IntVar(&cfg.MaxQuantity, "q", cfg.MaxQuantity, "maximum stock quantity per product")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
