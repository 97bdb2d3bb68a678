// Command storefront-admin runs maintenance tasks against the storefront
// record store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/99minutos/storefront-system/internal/cli"
	"github.com/99minutos/storefront-system/internal/pkg/config"
	"github.com/99minutos/storefront-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Output:  os.Stderr,
		Service: "storefront-admin",
	})

	if err := cli.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
