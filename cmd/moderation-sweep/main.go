package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"socialfeed/internal/config"
	"socialfeed/internal/wire"
)

// moderation-sweep re-checks stored publications and comments against the current
// lexicon and prints the report as JSON.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app, cleanup, err := wire.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("🧹 Starting moderation sweep...")
	report, err := app.FeedService.SweepModeration(ctx)
	if err != nil {
		log.Printf("Sweep interrupted: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(report); encErr != nil {
		log.Printf("Failed to encode report: %v", encErr)
	}
	if err != nil {
		stop()
		cleanup()
		os.Exit(1)
	}
}
