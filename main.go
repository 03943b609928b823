package main

import (
	"context"
	"log"
	"os"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/xNickChildx/mult-ff-viewer-pub/config"
	"github.com/xNickChildx/mult-ff-viewer-pub/controller"
	"github.com/xNickChildx/mult-ff-viewer-pub/espn"
	"github.com/xNickChildx/mult-ff-viewer-pub/ui"
)

const defaultConfigPath = "config"

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configPath := os.Getenv("FF_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	espnClient, err := espn.New()
	if err != nil {
		log.Fatalf("error creating espn client: %v", err)
	}

	clock := clock.New()
	ctrl, err := controller.New(clock, espnClient, cfg)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	ctx := context.Background()

	// A failed initial refresh is not fatal: the dashboard starts with the
	// error banner up and the user can retry with 'r'.
	session, err := controller.NewSession(ctx, ctrl, clock, cfg.Users)
	if session == nil {
		log.Fatalf("error creating session: %v", err)
	}
	if err != nil {
		log.Printf("initial refresh failed: %v", err)
	}

	app := ui.New(session, err)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("error running dashboard: %v", err)
	}
}
