package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/models"
)

func createTestAnalytics() *analytics.Service {
	svc := analytics.NewService()
	svc.SetData(
		[]models.Product{
			{ProductID: "P001", Category: "Electronics", SubCategory: "Laptops", Value: 1500},
			{ProductID: "P002", Category: "Furniture", SubCategory: "Chairs", Value: 300},
		},
		[]models.SalesRecord{
			{
				Month: 1, Year: 2023, TotalCost: 80000, TotalDiscount: 5000,
				OrderAvg: 100, UnitsSales: 1000, ProfitMargin: 0.2,
				TotalSales: 100000, StateUSA: "California",
				PercentagePromo: 0.4, PercentageNonPromo: 0.6,
			},
		},
	)
	return svc
}

func TestFigure_WithoutFetcher(t *testing.T) {
	b := NewBuilder(createTestAnalytics(), nil)

	fig := b.Figure(context.Background())
	if fig == nil {
		t.Fatal("expected a figure")
	}
	// treemap + 5 legend stubs + choropleth + 2 bars + 8 indicators.
	if len(fig.Data) != 17 {
		t.Errorf("expected 17 traces, got %d", len(fig.Data))
	}
}

func TestRender_Static(t *testing.T) {
	b := NewBuilder(createTestAnalytics(), nil)

	var buf strings.Builder
	if err := b.Render(context.Background(), &buf, false); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Executive Sales Summary",
		"cdn.plot.ly",
		`id="figure-data"`,
		"Plotly.newPlot",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}

	// The static artifact has no live-refresh wiring.
	if strings.Contains(html, "datastar") {
		t.Error("static page must not load datastar")
	}
}

func TestRender_Live(t *testing.T) {
	b := NewBuilder(createTestAnalytics(), nil)

	var buf strings.Builder
	if err := b.Render(context.Background(), &buf, true); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "datastar") {
		t.Error("live page must load datastar")
	}
	if !strings.Contains(html, "/sse/refresh-all") {
		t.Error("live page must wire the refresh action")
	}
	if !strings.Contains(html, `id="kpi-strip"`) {
		t.Error("live page must include the kpi strip target")
	}
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "executive_sales_summary.html")

	b := NewBuilder(createTestAnalytics(), nil)
	if err := b.WriteHTML(context.Background(), path); err != nil {
		t.Fatalf("WriteHTML() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("missing HTML artifact: %v", err)
	}
	if !strings.Contains(string(data), "Plotly.newPlot") {
		t.Error("artifact missing the plot bootstrap")
	}
}
