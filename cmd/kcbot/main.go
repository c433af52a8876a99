package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/warshanks/kcbot/internal/bot"
	_ "github.com/warshanks/kcbot/internal/modules/apod"
	_ "github.com/warshanks/kcbot/internal/modules/chat"
	_ "github.com/warshanks/kcbot/internal/modules/image"
	_ "github.com/warshanks/kcbot/internal/modules/music"
	_ "github.com/warshanks/kcbot/internal/modules/tts"
	_ "github.com/warshanks/kcbot/internal/modules/weather"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/kcbot
var version = "dev"

func main() {
	// Configure JSON logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// A local .env is optional; deployments may set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	slog.Info("starting kcbot", "version", version)

	// Load configuration
	cfg, err := bot.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Create and configure bot
	b := bot.NewBot(cfg)
	b.LoadModules()

	// Start bot
	if err := b.Start(); err != nil {
		slog.Error("failed to start bot", "error", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("received termination signal, shutting down")
	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed bot shutdown")
	os.Exit(0)
}
