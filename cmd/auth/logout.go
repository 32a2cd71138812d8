package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/internal/credentials"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := credentials.Path()
			if err != nil {
				return err
			}
			if err := credentials.Delete(path); err != nil {
				return err
			}
			pterm.Success.Println("credentials removed")
			return nil
		},
	}
}
