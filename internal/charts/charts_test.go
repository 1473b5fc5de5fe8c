package charts

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/models"
)

func testNodes() []models.TreemapNode {
	return []models.TreemapNode{
		{Label: "Electronics", Value: 2700},
		{Label: "Laptops", Parent: "Electronics", Value: 1500, ParentShare: 55.6},
		{Label: "Smartphones", Parent: "Electronics", Value: 1200, ParentShare: 44.4},
	}
}

func testStates() []models.StateSales {
	return []models.StateSales{
		{State: "California", Abbrev: "CA", TotalSales: 150000},
		{State: "Texas", Abbrev: "TX", TotalSales: 60000},
	}
}

func testMonths() []models.MonthlyPromo {
	return []models.MonthlyPromo{
		{Month: 1, PromoSales: 58000, NonPromoSales: 102000},
		{Month: 2, PromoSales: 25000, NonPromoSales: 25000},
	}
}

func testKPIs() models.KPISet {
	return models.KPISet{
		Revenue: 210000, Profit: 45000, Discount: 8500, Margin: 0.214,
		Orders: 1650, OrderAvg: 150, Units: 1650, ProductCount: 4,
	}
}

func TestTreemap(t *testing.T) {
	data := Treemap(testNodes())

	// One treemap trace plus one legend stub per category.
	if len(data) != 1+len(catalog.CategoryOrder) {
		t.Fatalf("expected %d traces, got %d", 1+len(catalog.CategoryOrder), len(data))
	}

	trace, ok := data[0].(*TreemapTrace)
	if !ok {
		t.Fatalf("expected first trace to be *TreemapTrace, got %T", data[0])
	}
	if trace.BranchValues != "total" {
		t.Errorf("expected branchvalues total, got %s", trace.BranchValues)
	}

	// Category headers are white with no border; children carry the
	// parent's palette color.
	if trace.Marker.Colors[0] != "white" {
		t.Errorf("expected white category tile, got %s", trace.Marker.Colors[0])
	}
	if trace.Marker.Line.Width[0] != 0 {
		t.Errorf("expected zero border on category tile, got %v", trace.Marker.Line.Width[0])
	}
	if want := catalog.ColorMap["Electronics"]; trace.Marker.Colors[1] != want {
		t.Errorf("expected Laptops tile %s, got %s", want, trace.Marker.Colors[1])
	}
	if trace.HoverTemplate[0] != "<extra></extra>" {
		t.Errorf("expected suppressed hover on category tile, got %q", trace.HoverTemplate[0])
	}
	if !strings.Contains(trace.HoverTemplate[1], "55.6%") {
		t.Errorf("expected parent share in hover, got %q", trace.HoverTemplate[1])
	}

	for i, cat := range catalog.CategoryOrder {
		stub, ok := data[i+1].(*ScatterTrace)
		if !ok {
			t.Fatalf("trace %d: expected *ScatterTrace, got %T", i+1, data[i+1])
		}
		if stub.Name != cat {
			t.Errorf("legend stub %d: got %q, want %q", i, stub.Name, cat)
		}
		if stub.Marker.Color != catalog.ColorMap[cat] {
			t.Errorf("legend stub %s: color %s, want %s", cat, stub.Marker.Color, catalog.ColorMap[cat])
		}
	}
}

func TestStateMap_WithGeoJSON(t *testing.T) {
	geojson := []byte(`{"type":"FeatureCollection","features":[]}`)

	trace := StateMap(testStates(), geojson)

	if trace.FeatureIDKey != "properties.name" {
		t.Errorf("expected featureidkey properties.name, got %s", trace.FeatureIDKey)
	}
	if trace.LocationMode != "" {
		t.Errorf("expected no locationmode with geojson, got %s", trace.LocationMode)
	}
	if len(trace.Locations) != 2 || trace.Locations[0] != "California" {
		t.Errorf("expected full state names as locations, got %v", trace.Locations)
	}
}

func TestStateMap_Fallback(t *testing.T) {
	states := append(testStates(), models.StateSales{State: "Atlantis", TotalSales: 1})

	trace := StateMap(states, nil)

	if trace.LocationMode != "USA-states" {
		t.Errorf("expected USA-states locationmode, got %s", trace.LocationMode)
	}
	// The state without an abbreviation is dropped.
	if len(trace.Locations) != 2 || trace.Locations[0] != "CA" || trace.Locations[1] != "TX" {
		t.Errorf("expected abbreviations CA, TX, got %v", trace.Locations)
	}
}

func TestPromoBars(t *testing.T) {
	bars := PromoBars(testMonths())

	if len(bars) != 2 {
		t.Fatalf("expected 2 bar traces, got %d", len(bars))
	}
	if bars[0].Name != "Promo" || bars[1].Name != "Non-Promo" {
		t.Errorf("unexpected trace names: %s, %s", bars[0].Name, bars[1].Name)
	}
	if bars[0].X[0] != "Jan" || bars[0].X[1] != "Feb" {
		t.Errorf("expected month names Jan, Feb, got %v", bars[0].X)
	}
	if bars[0].Y[0] != 58000 || bars[1].Y[0] != 102000 {
		t.Errorf("unexpected month 1 values: %v, %v", bars[0].Y[0], bars[1].Y[0])
	}
}

func TestKPICards(t *testing.T) {
	cards := KPICards(testKPIs())

	if len(cards) != 8 {
		t.Fatalf("expected 8 indicator traces, got %d", len(cards))
	}

	for i, card := range cards {
		if card.Type != "indicator" {
			t.Errorf("card %d: type %s, want indicator", i, card.Type)
		}
		if card.Domain == nil {
			t.Errorf("card %d: missing domain", i)
			continue
		}
		for _, v := range []float64{card.Domain.X[0], card.Domain.X[1], card.Domain.Y[0], card.Domain.Y[1]} {
			if v < 0 || v > 1 {
				t.Errorf("card %d: domain coordinate %v outside [0,1]", i, v)
			}
		}
	}

	// Margin renders as a percentage.
	var margin *IndicatorTrace
	for _, card := range cards {
		if strings.Contains(card.Title.Text, "Margin") {
			margin = card
		}
	}
	if margin == nil {
		t.Fatal("missing margin card")
	}
	if math.Abs(margin.Value-21.4) > 1e-9 {
		t.Errorf("margin card value %v, want 21.4", margin.Value)
	}
	if margin.Number == nil || margin.Number.Suffix != "%" {
		t.Error("expected %% suffix on margin card")
	}
}

func TestExecutiveFigure(t *testing.T) {
	fig := ExecutiveFigure(testStates(), testMonths(), testNodes(), testKPIs(), nil)

	out, err := fig.JSON()
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	for _, want := range []string{
		`"treemap"`,
		`"choropleth"`,
		`"bar"`,
		`"indicator"`,
		`"Executive Sales Summary"`,
		`"usa"`,
		`"group"`,
		`"Rockwell"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("figure JSON missing %s", want)
		}
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("figure JSON does not parse: %v", err)
	}
	data, ok := decoded["data"].([]any)
	if !ok {
		t.Fatal("expected a data array")
	}
	// treemap + 5 legend stubs + choropleth + 2 bars + 8 indicators.
	if len(data) != 17 {
		t.Errorf("expected 17 traces, got %d", len(data))
	}

	layout := decoded["layout"].(map[string]any)
	margin := layout["margin"].(map[string]any)
	if margin["t"].(float64) != 120 {
		t.Errorf("expected top margin 120, got %v", margin["t"])
	}
	title := layout["title"].(map[string]any)
	if title["x"].(float64) != 0.02 {
		t.Errorf("expected title x 0.02, got %v", title["x"])
	}
}

func TestExportMonthlyPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly.png")

	if err := ExportMonthlyPNG(path, testMonths()); err != nil {
		t.Fatalf("ExportMonthlyPNG() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("missing PNG output: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG file")
	}
}

func TestExportMonthlyPNG_EmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly.png")

	if err := ExportMonthlyPNG(path, nil); err == nil {
		t.Error("expected error for empty month data")
	}
}
