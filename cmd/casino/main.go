package main

import (
	"context"
	"flag"
	"os"

	"github.com/spinwager/casino-backend/config"
	"github.com/spinwager/casino-backend/internal/app"
	"github.com/spinwager/casino-backend/internal/domain/types"
	"github.com/spinwager/casino-backend/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger(types.ServiceName, logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		os.Exit(1)
	}

	if cfg.LogLevel != "" && logger.ValidateLogLevel(cfg.LogLevel) {
		log = logger.InitLogger(types.ServiceName, cfg.LogLevel)
	}

	// Creating application
	application, err := app.New(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
