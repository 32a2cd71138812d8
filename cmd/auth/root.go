package auth

import (
	"github.com/spf13/cobra"
)

// GetRootCmd groups credential management commands.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage registry credentials",
		Long:  "Store, inspect and remove the bearer token used against the registry",
	}

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogoutCmd())

	return rootCmd
}
