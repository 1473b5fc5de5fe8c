package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"retail-dashboard/internal/config"
	"retail-dashboard/internal/observability"
)

var (
	cfgFile string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "retaildash",
	Short: "Synthetic retail datasets and the executive sales dashboard",
	Long: `retaildash generates synthetic retail product and sales datasets and
renders them as an executive dashboard: a category treemap, a sales
choropleth of the US, a promo vs non-promo bar chart, and KPI cards
composed into a single figure.

Typical flow:

  retaildash generate
  retaildash build

or serve the dashboard live:

  retaildash serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if cfgFile != "" {
			if err := cfg.ApplyFile(cfgFile); err != nil {
				return err
			}
		}

		logger = observability.NewLogger(cfg.Logger)
		slog.SetDefault(logger)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file overlaying the environment")

	rootCmd.AddCommand(generateCmd, buildCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
