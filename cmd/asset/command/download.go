package command

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	"github.com/muleops/exchange-cli/internal/exchange"
	"github.com/muleops/exchange-cli/util/common/errors"
	"github.com/muleops/exchange-cli/util/common/progress"
)

// NewDownloadCmd creates the cobra.Command downloading packaged RAML
// archives for one or more assets.
func NewDownloadCmd() *cobra.Command {
	var (
		search string
		dest   string
	)

	cmd := &cobra.Command{
		Use:   "download [<groupId/assetId/version>...]",
		Short: "Download packaged RAML archives",
		Long: heredoc.Doc(`
			Resolve the named asset versions (or every hit of a search) and
			download each asset's fat-raml archive concurrently. Archives land
			in the destination directory as <assetId>.zip; assets that cannot
			be resolved through the registry are skipped with a warning naming
			the manual download URL.
		`),
		Example: heredoc.Doc(`
			exc asset download org.example/payments-api/2.0.0
			exc asset download --search "billing" --dest ./archives
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if search == "" && len(args) == 0 {
				return errors.NewValidationError("args",
					"name at least one groupId/assetId/version or pass --search")
			}

			client := newExchangeClient(exchange.WithProgress(progress.Reader))
			token := config.Global.AuthToken

			var assets []*exchange.AssetDescriptor
			if search != "" {
				found, err := client.SearchExchange(cmd.Context(), token, search)
				if err != nil {
					return err
				}
				assets = found
			}
			for _, arg := range args {
				parts := strings.Split(arg, "/")
				if len(parts) != 3 {
					return errors.NewValidationError("asset",
						fmt.Sprintf("expected groupId/assetId/version, got %q", arg))
				}
				d, err := client.GetSpecificAPI(cmd.Context(), token, parts[0], parts[1], parts[2])
				if err != nil {
					return err
				}
				if d == nil {
					pterm.Warning.Printfln("skipping %s: not found in the registry", arg)
					continue
				}
				assets = append(assets, d)
			}

			if len(assets) == 0 {
				pterm.Warning.Println("nothing to download")
				return nil
			}

			if dest == "" {
				// Falls back to the config file setting, then to the
				// client default.
				dest = config.Global.Download.Directory
			}
			dir, err := client.FetchExchangeFiles(cmd.Context(), assets, dest)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("downloaded %d archive(s) to %s", len(assets), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Download every asset matching this search instead of naming them")
	cmd.Flags().StringVar(&dest, "dest", "",
		"Destination directory for the archives (default \""+exchange.DefaultDownloadDir+"\")")

	return cmd
}
