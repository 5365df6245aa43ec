// Command server runs the recall backend HTTP API.
//
// Configuration comes from the environment (and an optional config
// file); see internal/config for the full list of settings.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/recallapp/recall-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
