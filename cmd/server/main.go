// Command server runs the launchpad HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/launchhub/launchpad-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
