package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"financeos/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Start schedulers (month close, envelope rollover) and the outbox relay.
func main() {
	// Load .env for local dev; deployed processes get real env vars.
	_ = godotenv.Load()

	log.Println("financeos worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("financeos worker stopped with error: %v", err)
	}
}
