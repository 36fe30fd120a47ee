package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/secmon-lab/launchdash/pkg/cli"
)

func main() {
	// Values from a local .env file become LAUNCHDASH_* flag sources; a missing file is fine
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("launchdash failed", "error", err)
		os.Exit(1)
	}
}
