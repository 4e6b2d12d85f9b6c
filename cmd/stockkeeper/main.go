package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/cli"
	"github.com/dmitrijs2005/stockkeeper/internal/config"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	app := cli.NewApp(cfg, logger)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
