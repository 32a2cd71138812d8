package auth

import (
	stderrors "errors"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/internal/credentials"
	"github.com/muleops/exchange-cli/util/common/errors"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := credentials.Path()
			if err != nil {
				return err
			}

			creds, err := credentials.Load(path)
			if stderrors.Is(err, errors.ErrNotFound) {
				pterm.Warning.Println("no saved credentials, run `exc auth login`")
				return nil
			}
			if err != nil {
				return err
			}

			pterm.Info.Printfln("token: %s", MaskToken(creds.Token))
			if creds.BaseURL != "" {
				pterm.Info.Printfln("base URL: %s", creds.BaseURL)
			}
			return nil
		},
	}
}

// MaskToken hides all but the last four characters of a token.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
