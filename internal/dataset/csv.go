// Package dataset reads and writes the two CSV files the dashboard is
// built from.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/models"
)

// ProductHeader and SalesHeader fix the on-disk column order.
var (
	ProductHeader = []string{"product_id", "category", "sub_category", "value"}
	SalesHeader   = []string{
		"month", "year", "total_cost", "total_discount", "order_avg",
		"units_sales", "profit_margin", "total_sales", "state_usa",
		"percentage_promo", "percentage_non_promo",
	}
)

func WriteProducts(path string, rows []models.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ProductHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range rows {
		record := []string{
			p.ProductID,
			p.Category,
			p.SubCategory,
			formatFloat(p.Value),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func WriteSales(path string, rows []models.SalesRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SalesHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range rows {
		record := []string{
			strconv.Itoa(s.Month),
			strconv.Itoa(s.Year),
			formatFloat(s.TotalCost),
			formatFloat(s.TotalDiscount),
			formatFloat(s.OrderAvg),
			strconv.Itoa(s.UnitsSales),
			formatFloat(s.ProfitMargin),
			formatFloat(s.TotalSales),
			s.StateUSA,
			formatFloat(s.PercentagePromo),
			formatFloat(s.PercentageNonPromo),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// LoadProducts reads products.csv. A missing file is the one tolerated
// failure: it logs a warning and returns the embedded sample rows.
// Malformed rows are skipped; a file yielding no valid rows is an error.
func LoadProducts(ctx context.Context, path string, logger *slog.Logger) ([]models.Product, error) {
	records, err := readAll(ctx, path, len(ProductHeader))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("products file not found, using sample data", "path", path)
			return catalog.SampleProducts, nil
		}
		return nil, err
	}

	rows := make([]models.Product, 0, len(records))
	for _, rec := range records {
		value, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			continue
		}
		rows = append(rows, models.Product{
			ProductID:   rec[0],
			Category:    rec[1],
			SubCategory: rec[2],
			Value:       value,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid product rows in %s", path)
	}
	return rows, nil
}

// LoadSales reads sales_summary.csv with the same fallback semantics
// as LoadProducts.
func LoadSales(ctx context.Context, path string, logger *slog.Logger) ([]models.SalesRecord, error) {
	records, err := readAll(ctx, path, len(SalesHeader))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("sales file not found, using sample data", "path", path)
			return catalog.SampleSales, nil
		}
		return nil, err
	}

	rows := make([]models.SalesRecord, 0, len(records))
	for _, rec := range records {
		row, err := parseSalesRecord(rec)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid sales rows in %s", path)
	}
	return rows, nil
}

func parseSalesRecord(rec []string) (models.SalesRecord, error) {
	month, err := strconv.Atoi(rec[0])
	if err != nil {
		return models.SalesRecord{}, err
	}
	year, err := strconv.Atoi(rec[1])
	if err != nil {
		return models.SalesRecord{}, err
	}
	units, err := strconv.Atoi(rec[5])
	if err != nil {
		return models.SalesRecord{}, err
	}

	floats := make([]float64, 0, 7)
	for _, idx := range []int{2, 3, 4, 6, 7, 9, 10} {
		v, err := strconv.ParseFloat(rec[idx], 64)
		if err != nil {
			return models.SalesRecord{}, err
		}
		floats = append(floats, v)
	}

	return models.SalesRecord{
		Month:              month,
		Year:               year,
		TotalCost:          floats[0],
		TotalDiscount:      floats[1],
		OrderAvg:           floats[2],
		UnitsSales:         units,
		ProfitMargin:       floats[3],
		TotalSales:         floats[4],
		StateUSA:           rec[8],
		PercentagePromo:    floats[5],
		PercentageNonPromo: floats[6],
	}, nil
}

func readAll(ctx context.Context, path string, wantFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = wantFields

	// Header row
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var records [][]string
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it; the reader resumes on the next line.
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
