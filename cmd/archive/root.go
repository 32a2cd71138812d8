package archive

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/muleops/exchange-cli/config"
	archives "github.com/muleops/exchange-cli/internal/archive"
	"github.com/muleops/exchange-cli/util/common"
	"github.com/muleops/exchange-cli/util/common/printer"
)

// GetRootCmd groups commands inspecting downloaded archives.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect downloaded asset archives",
	}

	rootCmd.AddCommand(newFilesCmd())

	return rootCmd
}

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <archive.zip>",
		Short: "List the entries of a downloaded archive",
		Long: heredoc.Doc(`
			Stream through a downloaded asset archive and list its entries
			without extracting anything.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := archives.ListEntries(args[0])
			if err != nil {
				return err
			}

			if config.Global.Format == "json" {
				return printer.PrintJson(entries)
			}

			type row struct {
				Name string `json:"name"`
				Size string `json:"size"`
			}
			rows := make([]row, 0, len(entries))
			for _, e := range entries {
				if e.Dir {
					continue
				}
				rows = append(rows, row{Name: e.Name, Size: common.GetSize(e.Size)})
			}
			return printer.PrintTable(rows, printer.ColumnMapping{
				{"name", "NAME"},
				{"size", "SIZE"},
			})
		},
	}
}
