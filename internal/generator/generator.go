// Package generator produces the synthetic product and sales datasets.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/config"
	"retail-dashboard/internal/dataset"
	"retail-dashboard/internal/models"
)

// Generator builds both datasets from seeded pseudo-random draws. Runs
// with the same configuration are deterministic.
type Generator struct {
	cfg    config.GeneratorConfig
	logger *slog.Logger
}

// RunSummary reports what a generation run produced.
type RunSummary struct {
	RunID        string        `json:"run_id"`
	Products     int           `json:"products"`
	SalesRows    int           `json:"sales_rows"`
	TotalSales   float64       `json:"total_sales"`
	ProductsPath string        `json:"products_path"`
	SalesPath    string        `json:"sales_path"`
	Duration     time.Duration `json:"duration"`
}

func New(cfg config.GeneratorConfig, logger *slog.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// Products generates the product table: sequential IDs, a category and
// sub-category drawn from the fixed taxonomy, and a value uniform in
// the category's range.
func (g *Generator) Products() []models.Product {
	rng := rand.New(rand.NewSource(g.cfg.Seed))

	rows := make([]models.Product, 0, g.cfg.Products)
	for i := 0; i < g.cfg.Products; i++ {
		category := catalog.CategoryOrder[rng.Intn(len(catalog.CategoryOrder))]
		subs := catalog.SubCategories[category]
		vr := catalog.ValueRanges[category]

		rows = append(rows, models.Product{
			ProductID:   fmt.Sprintf("P%03d", i+1),
			Category:    category,
			SubCategory: subs[rng.Intn(len(subs))],
			Value:       round2(uniform(rng, vr.Min, vr.Max)),
		})
	}
	return rows
}

// SalesSummary generates one row per (month, state) pair, capped at
// MaxSalesRows. Cost follows a sinusoidal seasonal pattern; sales are
// derived from cost and margin so the margin invariant holds by
// construction.
func (g *Generator) SalesSummary() []models.SalesRecord {
	// Offset seed keeps the two datasets independent while the run as
	// a whole stays reproducible.
	rng := rand.New(rand.NewSource(g.cfg.Seed + 1))

	states := sampleStates(rng, g.cfg.States)

	rows := make([]models.SalesRecord, 0, g.cfg.Months*len(states))
	for month := 1; month <= g.cfg.Months; month++ {
		seasonality := 1 + 0.2*math.Sin(float64(month-1)*math.Pi/6)

		for _, state := range states {
			baseSales := uniform(rng, 50000, 200000)

			totalCost := round2(baseSales * uniform(rng, 0.5, 0.8) * seasonality)
			totalDiscount := round2(totalCost * uniform(rng, 0.01, 0.15))
			orderAvg := round2(uniform(rng, 50, 300))
			units := int(baseSales * uniform(rng, 0.5, 2.0) / orderAvg)
			profitMargin := round2(uniform(rng, 0.1, 0.4))
			totalSales := round2(totalCost / (1 - profitMargin))
			promo := round2(uniform(rng, 0.2, 0.6))

			rows = append(rows, models.SalesRecord{
				Month:              month,
				Year:               g.cfg.Year,
				TotalCost:          totalCost,
				TotalDiscount:      totalDiscount,
				OrderAvg:           orderAvg,
				UnitsSales:         units,
				ProfitMargin:       profitMargin,
				TotalSales:         totalSales,
				StateUSA:           state,
				PercentagePromo:    promo,
				PercentageNonPromo: round2(1 - promo),
			})
		}
	}

	if len(rows) > g.cfg.MaxSalesRows {
		rows = rows[:g.cfg.MaxSalesRows]
	}
	return rows
}

// Run generates both datasets concurrently and writes them to dataDir.
func (g *Generator) Run(ctx context.Context, cfg config.DataConfig) (*RunSummary, error) {
	start := time.Now()
	runID := uuid.NewString()

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	productsPath := filepath.Join(cfg.Dir, cfg.ProductsFile)
	salesPath := filepath.Join(cfg.Dir, cfg.SalesFile)

	var (
		products []models.Product
		sales    []models.SalesRecord
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		products = g.Products()
		return dataset.WriteProducts(productsPath, products)
	})
	eg.Go(func() error {
		sales = g.SalesSummary()
		return dataset.WriteSales(salesPath, sales)
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var totalSales float64
	for _, s := range sales {
		totalSales += s.TotalSales
	}

	summary := &RunSummary{
		RunID:        runID,
		Products:     len(products),
		SalesRows:    len(sales),
		TotalSales:   round2(totalSales),
		ProductsPath: productsPath,
		SalesPath:    salesPath,
		Duration:     time.Since(start),
	}

	g.logger.Info("datasets generated",
		"run_id", summary.RunID,
		"products", summary.Products,
		"sales_rows", summary.SalesRows,
		"total_sales", summary.TotalSales,
		"duration", summary.Duration,
	)

	return summary, nil
}

func sampleStates(rng *rand.Rand, n int) []string {
	perm := rng.Perm(len(catalog.StatesUSA))

	states := make([]string, 0, n)
	for _, idx := range perm[:n] {
		states = append(states, catalog.StatesUSA[idx])
	}
	return states
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
