package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avasiljevs/itemvault/internal/client/cli"
	"github.com/avasiljevs/itemvault/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
