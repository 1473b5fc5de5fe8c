// Package analytics derives the dashboard's aggregate views from the
// two datasets and keeps them precomputed behind a read lock.
package analytics

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/dataset"
	"retail-dashboard/internal/models"
)

const (
	cacheVersion = "v1"
	cacheDir     = ".cache"
)

type PrecomputedData struct {
	StateSales   []models.StateSales   `json:"state_sales"`
	MonthlyPromo []models.MonthlyPromo `json:"monthly_promo"`
	TreemapNodes []models.TreemapNode  `json:"treemap_nodes"`
	KPIs         models.KPISet         `json:"kpis"`
	LastModified time.Time             `json:"last_modified"`
	ProductCount int64                 `json:"product_count"`
	SalesCount   int64                 `json:"sales_count"`
}

type Service struct {
	mu           sync.RWMutex
	precomputed  *PrecomputedData
	productsPath string
	salesPath    string
	logger       *slog.Logger
}

func NewService() *Service {
	return &Service{
		precomputed: &PrecomputedData{},
		logger:      slog.Default(),
	}
}

// SetData computes all views from in-memory rows. Used by tests and by
// callers that already hold the datasets.
func (s *Service) SetData(products []models.Product, sales []models.SalesRecord) {
	pre := compute(products, sales)

	s.mu.Lock()
	s.precomputed = pre
	s.mu.Unlock()
}

// Load reads both CSV files (with the embedded-sample fallback for a
// missing file) and precomputes every view. A valid snapshot cache for
// unchanged inputs short-circuits the parse.
func (s *Service) Load(ctx context.Context, productsPath, salesPath string) error {
	s.mu.Lock()
	s.productsPath = productsPath
	s.salesPath = salesPath
	s.mu.Unlock()

	if cached, err := s.loadFromCache(); err == nil && s.cacheFresh(cached) {
		s.mu.Lock()
		s.precomputed = cached
		s.mu.Unlock()
		s.logger.Info("loaded analytics from cache",
			"products", cached.ProductCount,
			"sales_rows", cached.SalesCount,
		)
		return nil
	}

	start := time.Now()

	products, err := dataset.LoadProducts(ctx, productsPath, s.logger)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	sales, err := dataset.LoadSales(ctx, salesPath, s.logger)
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}

	pre := compute(products, sales)

	s.mu.Lock()
	s.precomputed = pre
	s.mu.Unlock()

	if err := s.saveToCache(); err != nil {
		s.logger.Warn("failed to save analytics cache", "error", err)
	}

	s.logger.Info("analytics computed",
		"products", pre.ProductCount,
		"sales_rows", pre.SalesCount,
		"states", len(pre.StateSales),
		"months", len(pre.MonthlyPromo),
		"duration", time.Since(start),
	)
	return nil
}

// Reload re-reads the previously loaded paths, bypassing the cache.
// Serve mode uses it to pick up regenerated datasets.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.RLock()
	productsPath, salesPath := s.productsPath, s.salesPath
	s.mu.RUnlock()

	if productsPath == "" || salesPath == "" {
		return fmt.Errorf("no dataset paths configured")
	}

	products, err := dataset.LoadProducts(ctx, productsPath, s.logger)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	sales, err := dataset.LoadSales(ctx, salesPath, s.logger)
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}

	s.SetData(products, sales)
	return nil
}

func compute(products []models.Product, sales []models.SalesRecord) *PrecomputedData {
	return &PrecomputedData{
		StateSales:   computeStateSales(sales),
		MonthlyPromo: computeMonthlyPromo(sales),
		TreemapNodes: computeTreemapNodes(products),
		KPIs:         computeKPIs(products, sales),
		LastModified: time.Now(),
		ProductCount: int64(len(products)),
		SalesCount:   int64(len(sales)),
	}
}

func computeStateSales(sales []models.SalesRecord) []models.StateSales {
	totals := make(map[string]float64)
	for _, s := range sales {
		totals[s.StateUSA] += s.TotalSales
	}

	result := make([]models.StateSales, 0, len(totals))
	for state, total := range totals {
		result = append(result, models.StateSales{
			State:      state,
			Abbrev:     catalog.StateAbbrev[state],
			TotalSales: round2(total),
		})
	}

	slices.SortFunc(result, func(a, b models.StateSales) int {
		switch {
		case a.TotalSales > b.TotalSales:
			return -1
		case a.TotalSales < b.TotalSales:
			return 1
		default:
			return strings.Compare(a.State, b.State)
		}
	})
	return result
}

func computeMonthlyPromo(sales []models.SalesRecord) []models.MonthlyPromo {
	promo := make(map[int]float64)
	nonPromo := make(map[int]float64)
	for _, s := range sales {
		promo[s.Month] += s.TotalSales * s.PercentagePromo
		nonPromo[s.Month] += s.TotalSales * s.PercentageNonPromo
	}

	result := make([]models.MonthlyPromo, 0, len(promo))
	for month := range promo {
		result = append(result, models.MonthlyPromo{
			Month:         month,
			PromoSales:    round2(promo[month]),
			NonPromoSales: round2(nonPromo[month]),
		})
	}

	slices.SortFunc(result, func(a, b models.MonthlyPromo) int {
		return a.Month - b.Month
	})
	return result
}

// computeTreemapNodes builds one node per category and one per
// sub-category, with each sub-category's share of its parent total.
func computeTreemapNodes(products []models.Product) []models.TreemapNode {
	catTotals := make(map[string]float64)
	subTotals := make(map[string]map[string]float64)
	for _, p := range products {
		catTotals[p.Category] += p.Value
		if subTotals[p.Category] == nil {
			subTotals[p.Category] = make(map[string]float64)
		}
		subTotals[p.Category][p.SubCategory] += p.Value
	}

	categories := make([]string, 0, len(catTotals))
	for _, cat := range catalog.CategoryOrder {
		if _, ok := catTotals[cat]; ok {
			categories = append(categories, cat)
		}
	}
	// Categories outside the fixed taxonomy still render, after the
	// known ones.
	for cat := range catTotals {
		if !slices.Contains(categories, cat) {
			categories = append(categories, cat)
		}
	}

	var nodes []models.TreemapNode
	for _, cat := range categories {
		nodes = append(nodes, models.TreemapNode{
			Label: cat,
			Value: round2(catTotals[cat]),
		})

		subs := make([]string, 0, len(subTotals[cat]))
		for sub := range subTotals[cat] {
			subs = append(subs, sub)
		}
		slices.Sort(subs)

		for _, sub := range subs {
			share := 0.0
			if catTotals[cat] > 0 {
				share = subTotals[cat][sub] / catTotals[cat] * 100
			}
			nodes = append(nodes, models.TreemapNode{
				Label:       sub,
				Parent:      cat,
				Value:       round2(subTotals[cat][sub]),
				ParentShare: math.Round(share*10) / 10,
			})
		}
	}
	return nodes
}

// computeKPIs reduces both datasets to the header-card scalars. Zero
// totals produce zero-valued ratios rather than NaN.
func computeKPIs(products []models.Product, sales []models.SalesRecord) models.KPISet {
	var (
		revenue, cost, discount, orderAvgSum float64
		orders, units                        int
	)
	for _, s := range sales {
		revenue += s.TotalSales
		cost += s.TotalCost
		discount += s.TotalDiscount
		orderAvgSum += s.OrderAvg
		units += s.UnitsSales
		if s.OrderAvg > 0 {
			orders += int(math.Round(s.TotalSales / s.OrderAvg))
		}
	}

	profit := revenue - cost

	var margin, orderAvg float64
	if revenue > 0 {
		margin = profit / revenue
	}
	if len(sales) > 0 {
		orderAvg = orderAvgSum / float64(len(sales))
	}

	return models.KPISet{
		Revenue:      round2(revenue),
		Profit:       round2(profit),
		Discount:     round2(discount),
		Margin:       math.Round(margin*1000) / 1000,
		Orders:       orders,
		OrderAvg:     round2(orderAvg),
		Units:        units,
		ProductCount: len(products),
	}
}

// Accessors return the precomputed slices; callers must not mutate.

func (s *Service) StateSales() []models.StateSales {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.precomputed.StateSales
}

func (s *Service) MonthlyPromo() []models.MonthlyPromo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.precomputed.MonthlyPromo
}

func (s *Service) TreemapNodes() []models.TreemapNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.precomputed.TreemapNodes
}

func (s *Service) KPIs() models.KPISet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.precomputed.KPIs
}

func (s *Service) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"product_count":  s.precomputed.ProductCount,
		"sales_count":    s.precomputed.SalesCount,
		"states":         len(s.precomputed.StateSales),
		"months":         len(s.precomputed.MonthlyPromo),
		"treemap_nodes":  len(s.precomputed.TreemapNodes),
		"last_processed": s.precomputed.LastModified,
	}
}

// Snapshot cache, keyed by both source paths.

func (s *Service) cacheFilename() string {
	key := strings.ReplaceAll(s.productsPath+"_"+s.salesPath, "/", "_")
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, key, cacheVersion)
}

// cacheFresh reports whether both source files exist and predate the
// cached snapshot. Missing files never use the cache: the fallback
// sample path is cheap and should log its warning every run.
func (s *Service) cacheFresh(cached *PrecomputedData) bool {
	for _, path := range []string{s.productsPath, s.salesPath} {
		info, err := os.Stat(path)
		if err != nil || !info.ModTime().Before(cached.LastModified) {
			return false
		}
	}
	return true
}

func (s *Service) saveToCache() error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	file, err := os.Create(s.cacheFilename())
	if err != nil {
		return err
	}
	defer file.Close()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return gob.NewEncoder(file).Encode(s.precomputed)
}

func (s *Service) loadFromCache() (*PrecomputedData, error) {
	file, err := os.Open(s.cacheFilename())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data PrecomputedData
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
