// Package main is the entry point for mazewalk.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazewalk/internal/cli"
)

func main() {
	// Load .env file for local development
	// This makes MAZEWALK_* and OTEL_* settings available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mazewalk:", err)
		stop()
		os.Exit(1)
	}
}
