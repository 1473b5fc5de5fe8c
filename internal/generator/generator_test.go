package generator

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/config"
)

func testConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Products:     150,
		Year:         2023,
		Months:       12,
		States:       20,
		MaxSalesRows: 100,
		Seed:         42,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGenerator_Products(t *testing.T) {
	g := New(testConfig(), testLogger())
	products := g.Products()

	if len(products) != 150 {
		t.Fatalf("expected 150 products, got %d", len(products))
	}

	if products[0].ProductID != "P001" {
		t.Errorf("expected first product ID P001, got %s", products[0].ProductID)
	}
	if products[149].ProductID != "P150" {
		t.Errorf("expected last product ID P150, got %s", products[149].ProductID)
	}

	for _, p := range products {
		if !catalog.ValidSubCategory(p.Category, p.SubCategory) {
			t.Errorf("product %s: sub-category %q not in category %q", p.ProductID, p.SubCategory, p.Category)
		}

		vr, ok := catalog.ValueRanges[p.Category]
		if !ok {
			t.Errorf("product %s: unknown category %q", p.ProductID, p.Category)
			continue
		}
		if p.Value < vr.Min || p.Value > vr.Max {
			t.Errorf("product %s: value %.2f outside [%v, %v]", p.ProductID, p.Value, vr.Min, vr.Max)
		}
	}
}

func TestGenerator_SalesSummary_Invariants(t *testing.T) {
	g := New(testConfig(), testLogger())
	rows := g.SalesSummary()

	if len(rows) != 100 {
		t.Fatalf("expected 100 sales rows (12 months x 20 states capped), got %d", len(rows))
	}

	for i, r := range rows {
		if sum := r.PercentagePromo + r.PercentageNonPromo; math.Abs(sum-1) > 0.01 {
			t.Errorf("row %d: promo %.2f + non-promo %.2f = %.2f, want 1", i, r.PercentagePromo, r.PercentageNonPromo, sum)
		}

		want := r.TotalCost / (1 - r.ProfitMargin)
		if math.Abs(r.TotalSales-want) > 0.01 {
			t.Errorf("row %d: total_sales %.2f, want total_cost/(1-margin) = %.2f", i, r.TotalSales, want)
		}

		if r.ProfitMargin < 0.1 || r.ProfitMargin > 0.4 {
			t.Errorf("row %d: profit margin %.2f outside [0.1, 0.4]", i, r.ProfitMargin)
		}

		if r.Year != 2023 {
			t.Errorf("row %d: year %d, want 2023", i, r.Year)
		}
		if r.Month < 1 || r.Month > 12 {
			t.Errorf("row %d: month %d out of range", i, r.Month)
		}
		if r.UnitsSales <= 0 {
			t.Errorf("row %d: units %d, want positive", i, r.UnitsSales)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	cfg := testConfig()
	a := New(cfg, testLogger())
	b := New(cfg, testLogger())

	productsA, productsB := a.Products(), b.Products()
	for i := range productsA {
		if productsA[i] != productsB[i] {
			t.Fatalf("product %d differs between runs with the same seed", i)
		}
	}

	salesA, salesB := a.SalesSummary(), b.SalesSummary()
	for i := range salesA {
		if salesA[i] != salesB[i] {
			t.Fatalf("sales row %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerator_SeedChangesOutput(t *testing.T) {
	cfg := testConfig()
	a := New(cfg, testLogger()).Products()

	cfg.Seed = 7
	b := New(cfg, testLogger()).Products()

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical product tables")
	}
}

func TestGenerator_StatesAreDistinct(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSalesRows = 1000
	g := New(cfg, testLogger())

	rows := g.SalesSummary()

	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Month == 1 {
			if seen[r.StateUSA] {
				t.Errorf("state %q sampled twice", r.StateUSA)
			}
			seen[r.StateUSA] = true
		}
	}
	if len(seen) != cfg.States {
		t.Errorf("expected %d distinct states in month 1, got %d", cfg.States, len(seen))
	}
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()

	dataCfg := config.DataConfig{
		Dir:          filepath.Join(dir, "data"),
		ProductsFile: "products.csv",
		SalesFile:    "sales_summary.csv",
	}

	g := New(testConfig(), testLogger())
	summary, err := g.Run(context.Background(), dataCfg)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.RunID == "" {
		t.Error("expected a run ID")
	}
	if summary.Products != 150 || summary.SalesRows != 100 {
		t.Errorf("unexpected summary counts: %d products, %d sales rows", summary.Products, summary.SalesRows)
	}

	for _, path := range []string{summary.ProductsPath, summary.SalesPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", path, err)
		}
	}
}
