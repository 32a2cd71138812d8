package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	"github.com/muleops/exchange-cli/internal/exchange"
	"github.com/muleops/exchange-cli/util/common/errors"
)

// NewVersionCmd creates the cobra.Command resolving the asset version
// deployed to a matching environment.
func NewVersionCmd() *cobra.Command {
	var deployment string

	cmd := &cobra.Command{
		Use:   "version <groupId/assetId> --deployment <regexp>",
		Short: "Resolve an asset version by deployment environment",
		Long: heredoc.Doc(`
			Scan the asset's deployed instances in registry order and print
			the version of the first instance whose environment name matches
			the pattern. With no matching instance the asset's own version is
			printed.
		`),
		Example: heredoc.Doc(`
			exc asset version org.example/payments-api --deployment "^prod"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.Split(args[0], "/")
			if len(parts) != 2 {
				return errors.NewValidationError("asset",
					fmt.Sprintf("expected groupId/assetId, got %q", args[0]))
			}
			pattern, err := regexp.Compile(deployment)
			if err != nil {
				return fmt.Errorf("invalid --deployment pattern: %w", err)
			}

			asset := &exchange.AssetDescriptor{GroupID: parts[0], AssetID: parts[1]}
			client := newExchangeClient()

			version, ok, err := client.GetVersionByDeployment(cmd.Context(), config.Global.AuthToken, asset, pattern)
			if err != nil {
				return err
			}
			if !ok {
				pterm.Warning.Printfln("no metadata for %s", args[0])
				return nil
			}
			fmt.Println(version)
			return nil
		},
	}

	cmd.Flags().StringVar(&deployment, "deployment", "", "Environment name pattern (regular expression)")
	cmd.MarkFlagRequired("deployment")

	return cmd
}
