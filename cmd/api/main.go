package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"financeos/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.

// @title FinanceOS Workspace API
// @version 1.0
// @description Financial normalization and forecasting engine for household planning workspaces.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env for local dev; deployed processes get real env vars.
	_ = godotenv.Load()

	log.Println("financeos api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("financeos api stopped with error: %v", err)
	}
}
