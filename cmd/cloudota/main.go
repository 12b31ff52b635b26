package main

import (
	"context"
	"flag"
	"log"

	"github.com/lokasync/cloudota/pkg/config"
	"github.com/lokasync/cloudota/pkg/consumers/otalog"
	"github.com/lokasync/cloudota/pkg/db"
	"github.com/lokasync/cloudota/pkg/lifecycle"
	"github.com/lokasync/cloudota/pkg/logger"
)

func main() {
	configPath := flag.String("config", "/etc/cloudota/cloudota.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	var cfg otalog.ConsumerConfig

	cfgLoader := config.NewConfig(nil)
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = logger.DefaultConfig()
	}

	mainLogger, err := lifecycle.CreateComponentLogger(ctx, "cloudota", logConfig)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	defer func() {
		if err := lifecycle.ShutdownLogger(); err != nil {
			log.Printf("Failed to shutdown logger: %v", err)
		}
	}()

	dbService, err := db.New(ctx, &cfg.Database, mainLogger)
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to initialize log store")
	}

	svc, err := otalog.NewService(&cfg, dbService, mainLogger)
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to initialize OTA log consumer")
	}

	opts := &lifecycle.ServerOptions{
		ServiceName: "cloudota",
		Services:    []lifecycle.Service{svc},
		Logger:      mainLogger,
	}

	if err := lifecycle.RunServer(ctx, opts); err != nil {
		mainLogger.Fatal().Err(err).Msg("Server failed")
	}
}
