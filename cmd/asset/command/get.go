package command

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	"github.com/muleops/exchange-cli/util/common/printer"
)

// NewGetCmd creates the cobra.Command for fetching raw asset metadata.
func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <groupId[/assetId[/version]]>",
		Short: "Fetch asset metadata",
		Long: heredoc.Doc(`
			Fetch raw metadata for an asset path. The path may name a group,
			an asset, or one specific version.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newExchangeClient()
			payload, err := client.GetAsset(cmd.Context(), config.Global.AuthToken, args[0])
			if err != nil {
				return err
			}
			if payload == nil {
				// The client already warned with the manual lookup URL.
				pterm.Warning.Printfln("no metadata for %s", args[0])
				return nil
			}
			return printer.PrintJson(payload)
		},
	}
}
