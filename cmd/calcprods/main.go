// calcprods calculates the products to order for a retreat menu.
//
// Usage:
//
//	calcprods [-s | -o | -n] [-p PEOPLE] [-d DAYS] [-m] [-v]
//	calcprods days [-d DAYS]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/calcprods/internal/cli"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
