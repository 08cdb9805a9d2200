package main

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

func createAdminCmd() *cobra.Command {
	input := &usecase.CreateStaffInput{}
	var role string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account",
		Example: `  storefrontctl create-admin --email owner@example.com --password 's3cret-pass' \
    --first-name Sara --last-name Ali --role admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Role = entity.Role(role)

			var authUC usecase.AuthUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				user, err := authUC.CreateStaff(ctx, input)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Email, user.ID)

				return nil
			}, &authUC)
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "account password")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&role, "role", string(entity.RoleAdmin), "admin or manager")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
