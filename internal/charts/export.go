package charts

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"retail-dashboard/internal/models"
)

// ExportMonthlyPNG renders per-month total sales (promo plus
// non-promo) as a static PNG bar chart.
func ExportMonthlyPNG(path string, months []models.MonthlyPromo) error {
	if len(months) == 0 {
		return fmt.Errorf("no monthly data to export")
	}

	bars := make([]chart.Value, 0, len(months))
	for _, m := range months {
		bars = append(bars, chart.Value{
			Label: monthName(m.Month),
			Value: m.PromoSales + m.NonPromoSales,
		})
	}

	graph := chart.BarChart{
		Title:    "Total Sales by Month",
		Height:   512,
		BarWidth: 42,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}
