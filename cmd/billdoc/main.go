package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/hayashiy/billdoc/pkg/config"
	"github.com/hayashiy/billdoc/pkg/logger"
)

func main() {
	// Optional .env; a missing file is not an error.
	if err := godotenv.Load(); err == nil {
		stdlog.Println(".env loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load configuration: %v", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("starting")

	Execute(cfg, log)
}
