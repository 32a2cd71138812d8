package command

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	"github.com/muleops/exchange-cli/internal/exchange"
	"github.com/muleops/exchange-cli/util/common/printer"
)

// NewSearchCmd creates the cobra.Command for searching registry assets.
func NewSearchCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search registry assets",
		Long: heredoc.Doc(`
			Run a free-text search against the registry and list the matching
			assets in registry order.
		`),
		Example: heredoc.Doc(`
			exc asset search "payments"
			exc asset search "orders" --filter "*-api" --json
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newExchangeClient()
			descriptors, err := client.SearchExchange(cmd.Context(), config.Global.AuthToken, args[0])
			if err != nil {
				return err
			}

			if filter != "" {
				g, err := glob.Compile(filter)
				if err != nil {
					return fmt.Errorf("invalid --filter pattern: %w", err)
				}
				matched := make([]*exchange.AssetDescriptor, 0, len(descriptors))
				for _, d := range descriptors {
					if g.Match(d.Name) || g.Match(d.AssetID) {
						matched = append(matched, d)
					}
				}
				descriptors = matched
			}

			if config.Global.Format == "json" {
				return printer.PrintJson(descriptors)
			}
			return printer.PrintTable(descriptors, printer.ColumnMapping{
				{"groupId", "GROUP"},
				{"assetId", "ASSET"},
				{"version", "VERSION"},
				{"name", "NAME"},
				{"updatedDate", "UPDATED"},
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Glob pattern applied to asset names")

	return cmd
}
