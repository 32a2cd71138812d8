package auth

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/internal/credentials"
	"github.com/muleops/exchange-cli/util/common/errors"
)

func newLoginCmd() *cobra.Command {
	var creds credentials.Credentials

	cmd := &cobra.Command{
		Use:   "login --token <token>",
		Short: "Save registry credentials",
		Long: heredoc.Doc(`
			Persist the bearer token (and optionally a non-default registry
			endpoint) so that other commands pick them up automatically.

			The token is stored as an opaque string; it is never inspected
			or refreshed.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Token == "" {
				return errors.NewValidationError("token", "a token is required, pass --token")
			}

			path, err := credentials.Path()
			if err != nil {
				return err
			}
			if err := credentials.Save(path, &creds); err != nil {
				return err
			}
			pterm.Success.Printfln("credentials saved to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Token, "token", "", "Bearer token for the registry")
	cmd.Flags().StringVar(&creds.BaseURL, "base-url", "", "Registry API endpoint to save")
	cmd.Flags().StringVar(&creds.WebURL, "web-url", "", "Human-facing registry URL to save")

	return cmd
}
