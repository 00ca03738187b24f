package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/forest-watch/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, initializeApp)
	stop()
	os.Exit(code)
}

// run returns the process exit code. Cleanup always happens before it returns.
func run(ctx context.Context, initialize func() (*bootstrap.App, func(), error)) int {
	app, cleanup, err := initialize()
	if err != nil {
		log.Printf("failed to wire application: %v", err)
		return 1
	}
	defer cleanup()

	if err := app.Run(ctx); err != nil {
		log.Printf("application stopped with error: %v", err)
		return 1
	}
	return 0
}
