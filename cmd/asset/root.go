package asset

import (
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/cmd/asset/command"
)

// GetRootCmd groups asset resolution and download commands.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asset",
		Short: "Resolve and download registry assets",
		Long:  "Search the registry, inspect asset metadata and download packaged RAML archives",
	}

	rootCmd.AddCommand(command.NewSearchCmd())
	rootCmd.AddCommand(command.NewGetCmd())
	rootCmd.AddCommand(command.NewVersionCmd())
	rootCmd.AddCommand(command.NewDownloadCmd())

	return rootCmd
}
