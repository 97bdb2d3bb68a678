// Package cli implements the storefront-admin command line: offline catalog
// seeding, admin account creation and order inspection against the
// configured record store.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/99minutos/storefront-system/internal/app"
	"github.com/99minutos/storefront-system/internal/pkg/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"

	cfg *config.Config
	log zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command operating on the storage named
// by cfg.
func NewRootCommand(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	opts := &RootOptions{cfg: cfg, log: log}

	cmd := &cobra.Command{
		Use:   "storefront-admin",
		Short: "Maintenance commands for the storefront record store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&cfg.Store.DataDir, "data-dir", cfg.Store.DataDir, "data directory of the file store")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCreateAdminCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))

	return cmd
}

// open connects to the configured storage and builds the services.
func (o *RootOptions) open(cmd *cobra.Command) (*app.Storage, app.Services, error) {
	storage, err := app.OpenStorage(cmd.Context(), o.cfg, o.log)
	if err != nil {
		return nil, app.Services{}, err
	}
	return storage, app.NewServices(storage, o.log), nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
