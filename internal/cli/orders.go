package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List stored orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, _, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			defer storage.Close()

			orders := storage.Orders.Load(cmd.Context())
			if username != "" {
				filtered := orders[:0]
				for _, o := range orders {
					if o.Username == username {
						filtered = append(filtered, o)
					}
				}
				orders = filtered
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd, orders)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tITEMS\tTOTAL")
			for _, o := range orders {
				fmt.Fprintf(w, "%s\t%d\t%.2f\n", o.Username, len(o.Products), o.TotalPrice)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "only list orders of this user")
	return cmd
}
