package dataset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProductsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")

	in := []models.Product{
		{ProductID: "P001", Category: "Electronics", SubCategory: "Laptops", Value: 1499.99},
		{ProductID: "P002", Category: "Clothing", SubCategory: "Shirts", Value: 25.5},
	}
	if err := WriteProducts(path, in); err != nil {
		t.Fatalf("WriteProducts() failed: %v", err)
	}

	out, err := LoadProducts(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("LoadProducts() failed: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("expected %d rows, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("row %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestSalesRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")

	in := []models.SalesRecord{
		{
			Month: 3, Year: 2023, TotalCost: 80000, TotalDiscount: 5000.25,
			OrderAvg: 120.5, UnitsSales: 640, ProfitMargin: 0.2,
			TotalSales: 100000, StateUSA: "New York",
			PercentagePromo: 0.35, PercentageNonPromo: 0.65,
		},
	}
	if err := WriteSales(path, in); err != nil {
		t.Fatalf("WriteSales() failed: %v", err)
	}

	out, err := LoadSales(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("LoadSales() failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0] != in[0] {
		t.Errorf("got %+v, want %+v", out[0], in[0])
	}
}

func TestLoadProducts_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	out, err := LoadProducts(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("expected sample fallback, got error: %v", err)
	}
	if len(out) != len(catalog.SampleProducts) {
		t.Errorf("expected %d sample products, got %d", len(catalog.SampleProducts), len(out))
	}
}

func TestLoadSales_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	out, err := LoadSales(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("expected sample fallback, got error: %v", err)
	}
	if len(out) != len(catalog.SampleSales) {
		t.Errorf("expected %d sample rows, got %d", len(catalog.SampleSales), len(out))
	}
}

func TestLoadProducts_SkipsMalformedRows(t *testing.T) {
	path := writeFile(t, `product_id,category,sub_category,value
P001,Electronics,Laptops,1500.00
P002,Electronics,Laptops,not-a-number
P003,Furniture,Chairs
P004,Furniture,Chairs,300.00
`)

	out, err := LoadProducts(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("LoadProducts() failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(out))
	}
	if out[0].ProductID != "P001" || out[1].ProductID != "P004" {
		t.Errorf("wrong rows survived: %s, %s", out[0].ProductID, out[1].ProductID)
	}
}

func TestLoadProducts_NoValidRows(t *testing.T) {
	path := writeFile(t, `product_id,category,sub_category,value
P001,Electronics,Laptops,broken
`)

	if _, err := LoadProducts(context.Background(), path, testLogger()); err == nil {
		t.Error("expected error for a file with no valid rows")
	}
}

func TestLoadSales_CancelledContext(t *testing.T) {
	path := writeFile(t, `month,year,total_cost,total_discount,order_avg,units_sales,profit_margin,total_sales,state_usa,percentage_promo,percentage_non_promo
1,2023,80000.00,5000.00,100.00,1000,0.20,100000.00,California,0.40,0.60
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := LoadSales(ctx, path, testLogger()); err == nil {
		t.Error("expected error for cancelled context")
	}
}
