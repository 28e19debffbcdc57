package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"greeter-demo/internal/app"
	"greeter-demo/internal/buildinfo"
	"greeter-demo/internal/config"
	"greeter-demo/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	if cfg.ShowVersion {
		buildinfo.Print(os.Stdout)
		return
	}

	logLevel := slog.LevelWarn
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	ctx := context.Background()
	a, err := app.NewApp(cfg, logger, os.Stdout)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)

}
