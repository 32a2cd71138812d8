package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	archivecmd "github.com/muleops/exchange-cli/cmd/archive"
	assetcmd "github.com/muleops/exchange-cli/cmd/asset"
	authcmd "github.com/muleops/exchange-cli/cmd/auth"
	lintcmd "github.com/muleops/exchange-cli/cmd/lint"
	"github.com/muleops/exchange-cli/config"
	appconfig "github.com/muleops/exchange-cli/internal/config"
	"github.com/muleops/exchange-cli/internal/credentials"
	"github.com/muleops/exchange-cli/internal/exchange"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	rootCmd := buildRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var (
		jsonFlag   bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "exc",
		Short: "CLI for the Anypoint Exchange asset registry",
		Long: heredoc.Doc(`
			exc resolves API asset metadata from Anypoint Exchange, downloads
			packaged RAML archives, and lints RAML specifications against the
			governance ruleset.
		`),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if jsonFlag {
				config.Global.Format = "json"
			}
			if configPath != "" {
				cfg, err := appconfig.LoadConfig(configPath)
				if err != nil {
					return err
				}
				flags := cmd.Root().PersistentFlags()
				if cfg.Registry.BaseURL != "" && !flags.Changed("base-url") {
					config.Global.BaseURL = cfg.Registry.BaseURL
				}
				if cfg.Registry.WebURL != "" && !flags.Changed("web-url") {
					config.Global.WebURL = cfg.Registry.WebURL
				}
				config.Global.Download.Directory = cfg.Download.Directory
			}
			if config.Global.NoColor || os.Getenv("NO_COLOR") != "" {
				pterm.DisableColor()
			}

			if config.Global.Verbose {
				logWriter := zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
					NoColor:    config.Global.NoColor,
				}
				log.Logger = log.Output(logWriter)
			} else {
				log.Logger = zerolog.Nop()
			}
			return nil
		},
	}

	// Persistent flags available to all commands - bind them directly to global config
	addGlobalFlags(rootCmd.PersistentFlags(), &jsonFlag, &configPath)

	// Load saved credentials; explicit flags win because they are parsed
	// after this point.
	if path, err := credentials.Path(); err == nil {
		if creds, err := credentials.Load(path); err == nil {
			if creds.Token != "" {
				config.Global.AuthToken = creds.Token
			}
			if creds.BaseURL != "" {
				config.Global.BaseURL = creds.BaseURL
			}
			if creds.WebURL != "" {
				config.Global.WebURL = creds.WebURL
			}
		}
	}

	// Check environment variables (override saved credentials, flags will
	// override during Execute)
	if envVal := os.Getenv("ANYPOINT_TOKEN"); envVal != "" {
		config.Global.AuthToken = envVal
	}
	if envVal := os.Getenv("ANYPOINT_BASE_URL"); envVal != "" {
		config.Global.BaseURL = envVal
	}
	if envVal := os.Getenv("ANYPOINT_WEB_URL"); envVal != "" {
		config.Global.WebURL = envVal
	}

	// Add main command groups
	rootCmd.AddCommand(authcmd.GetRootCmd())
	rootCmd.AddCommand(assetcmd.GetRootCmd())
	rootCmd.AddCommand(archivecmd.GetRootCmd())
	rootCmd.AddCommand(lintcmd.GetRootCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func addGlobalFlags(flags *pflag.FlagSet, jsonFlag *bool, configPath *string) {
	flags.StringVar(&config.Global.BaseURL, "base-url", exchange.DefaultBaseURL,
		"Registry API endpoint (overrides saved config)")
	flags.StringVar(&config.Global.WebURL, "web-url", exchange.DefaultWebURL,
		"Human-facing registry URL used in manual-download hints")
	flags.StringVar(&config.Global.AuthToken, "token", "",
		"Bearer token (overrides saved credentials)")
	flags.StringVar(&config.Global.Format, "format", "table", "Format of the result")
	flags.BoolVarP(&config.Global.Verbose, "verbose", "v", false,
		"Enable verbose logging to console")
	flags.BoolVar(&config.Global.NoColor, "no-color", false,
		"Disable colour output (also respects NO_COLOR env)")
	flags.BoolVar(jsonFlag, "json", false,
		"Output results as JSON (equivalent to --format=json)")
	flags.StringVar(configPath, "config", "",
		"Path to a YAML config file with registry and download settings")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("exc", Version)
		},
	}
}
