package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// seedIdentity is the caller recorded for offline catalog changes.
var seedIdentity = domain.Identity{Username: "storefront-admin", Role: domain.RoleAdmin}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <products.json>",
		Short: "Upsert the products of a JSON array into the catalog",
		Long: `Reads a JSON array of products ({"id","name","price","category"}) and
upserts each one into the catalog. Products with an existing id are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}
}

func runSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	storage, services, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer storage.Close()

	seeded, skipped := 0, 0
	for i, p := range products {
		if err := services.Catalog.Upsert(cmd.Context(), seedIdentity, p); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping product %d: %v\n", i, err)
			skipped++
			continue
		}
		seeded++
	}

	return writeResult(cmd, opts.Format, map[string]int{"seeded": seeded, "skipped": skipped},
		fmt.Sprintf("seeded %d products (%d skipped)", seeded, skipped))
}
