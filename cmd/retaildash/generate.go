package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"retail-dashboard/internal/generator"
)

const generateTimeout = 30 * time.Second

var (
	genProducts int
	genYear     int
	genStates   int
	genSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate products.csv and sales_summary.csv",
	Long: `Generates the two synthetic datasets into the data directory: the
product table (fixed category taxonomy, category-specific value
ranges) and the monthly sales summary per state (seasonal cost base,
derived sales and promo split). Runs are deterministic per seed.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genProducts, "products", 0, "number of products to generate")
	generateCmd.Flags().IntVar(&genYear, "year", 0, "year stamped on sales rows")
	generateCmd.Flags().IntVar(&genStates, "states", 0, "number of states to sample")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("products") {
		cfg.Generator.Products = genProducts
	}
	if cmd.Flags().Changed("year") {
		cfg.Generator.Year = genYear
	}
	if cmd.Flags().Changed("states") {
		cfg.Generator.States = genStates
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generator.Seed = genSeed
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), generateTimeout)
	defer cancel()

	gen := generator.New(cfg.Generator, logger)
	summary, err := gen.Run(ctx, cfg.Data)
	if err != nil {
		return err
	}

	logger.Info("datasets saved",
		"products_path", summary.ProductsPath,
		"sales_path", summary.SalesPath,
	)
	return nil
}
