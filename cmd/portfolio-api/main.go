package main

import (
	"fmt"
	"os"

	"github.com/kishordev/portfolio-api/internal/auth"
	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/kishordev/portfolio-api/internal/logger"
	"github.com/kishordev/portfolio-api/internal/metrics"
	"github.com/kishordev/portfolio-api/internal/portfolio"
	"github.com/kishordev/portfolio-api/internal/server"
	"github.com/kishordev/portfolio-api/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

func main() {
	Execute()
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Personal portfolio backend API",
	Long: `Portfolio API serves structured personal-portfolio content (biography,
education, contact info, certificates, languages, tech stacks) with
Google-OAuth-gated write access.`,
	RunE: runServer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Place version check in PreRun to ensure flags are parsed first
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			fmt.Println(config.GetVersionInfo())
			os.Exit(0)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.InitFlags()
	rootCmd.Flags().AddFlagSet(pflag.CommandLine)
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

func runServer(cmd *cobra.Command, args []string) error {
	app := fx.New(
		fx.NopLogger,
		config.Module,
		fx.Invoke(func(cfg *config.Config) error {
			return logger.InitLogger(&cfg.Logging)
		}),
		store.Module,
		metrics.Module,
		auth.Module,
		portfolio.Module,
		server.Module,
	)

	app.Run()
	return nil
}
