package lint

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	rules "github.com/muleops/exchange-cli/internal/lint"
	"github.com/muleops/exchange-cli/util/common/printer"
)

type fileReport struct {
	File   string       `json:"file"`
	Report rules.Report `json:"report"`
}

// GetRootCmd creates the lint command validating RAML documents against
// the governance ruleset.
func GetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file.raml>...",
		Short: "Lint RAML specifications",
		Long: heredoc.Doc(`
			Validate RAML documents against the governance ruleset and report
			every violation. The command exits non-zero when any document
			fails validation.
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := rules.DefaultValidator()

			var (
				reports []fileReport
				failed  int
			)
			for _, path := range args {
				report, err := validator.ValidateFile(path)
				if err != nil {
					return err
				}
				reports = append(reports, fileReport{File: path, Report: report})
				if !report.Conforms {
					failed++
				}
			}

			if config.Global.Format == "json" {
				if err := printer.PrintJson(reports); err != nil {
					return err
				}
			} else {
				for _, fr := range reports {
					if fr.Report.Conforms {
						pterm.Success.Printfln("%s conforms", fr.File)
						continue
					}
					for _, v := range fr.Report.Violations {
						pterm.Error.Printfln("%s: [%s] %s (%s)", fr.File, v.RuleID, v.Message, v.Path)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) failed validation", failed, len(args))
			}
			return nil
		},
	}
}
