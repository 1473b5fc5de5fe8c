package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/charts"
	"retail-dashboard/internal/dashboard"
	"retail-dashboard/internal/geo"
)

const buildTimeout = 60 * time.Second

var exportPNG bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the executive_sales_summary.html dashboard",
	Long: `Loads both datasets (falling back to embedded sample rows when a
file is missing), derives the aggregate views, and writes the
self-contained dashboard document. State boundaries are fetched once
and cached; without them the map uses Plotly's built-in outlines.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&exportPNG, "png", false, "also export the monthly sales bar chart as PNG")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), buildTimeout)
	defer cancel()

	svc := analytics.NewService()

	start := time.Now()
	if err := svc.Load(ctx, cfg.ProductsPath(), cfg.SalesPath()); err != nil {
		return err
	}
	logger.Info("datasets loaded", "duration", time.Since(start))

	fetcher := geo.NewFetcher(cfg.Data.GeoJSONURL, cfg.Data.GeoCacheDir)
	builder := dashboard.NewBuilder(svc, fetcher)

	if err := builder.WriteHTML(ctx, cfg.Data.HTMLFile); err != nil {
		return err
	}

	if exportPNG {
		if err := charts.ExportMonthlyPNG(cfg.Data.PNGFile, svc.MonthlyPromo()); err != nil {
			return err
		}
		logger.Info("bar chart exported", "path", cfg.Data.PNGFile)
	}

	return nil
}
