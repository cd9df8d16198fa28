package main

import (
	"log"

	"github.com/joho/godotenv"

	"govalue/adapters/stats/engine"
	"govalue/app"
	"govalue/internal"
	"govalue/internal/config"
	"govalue/internal/profiling"
	"govalue/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	comparator := engine.NewMonteCarloEngine(engine.NewSeededRNG())
	service := app.NewCompareService(comparator, appConfig.Sampling, logger)

	if appConfig.Profiling.Enabled {
		ops := profiling.NewServer(logger)
		go ops.Start(appConfig.Profiling.Port)
	}

	server := ui.NewServer(service, appConfig.Server, logger)
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
