package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

// NewCreateAdminCommand creates the create-admin command.
func NewCreateAdminCommand(rootOpts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, services, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			defer storage.Close()

			_, err = services.Auth.Register(cmd.Context(), ports.RegisterInput{
				Username:        username,
				Password:        password,
				ConfirmPassword: password,
				Role:            domain.RoleAdmin,
			})
			if errors.Is(err, domain.ErrDuplicateUsername) {
				return fmt.Errorf("user %q already exists", username)
			}
			if err != nil {
				return err
			}

			return writeResult(cmd, rootOpts.Format, map[string]string{"username": username, "role": string(domain.RoleAdmin)},
				fmt.Sprintf("admin %q created", username))
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
