package models

// Product is one row of products.csv.
type Product struct {
	ProductID   string  `json:"product_id"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Value       float64 `json:"value"`
}

// SalesRecord is one row of sales_summary.csv: the monthly summary for
// a single US state. PercentagePromo and PercentageNonPromo always sum
// to 1, and TotalSales equals TotalCost / (1 - ProfitMargin).
type SalesRecord struct {
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	TotalCost          float64 `json:"total_cost"`
	TotalDiscount      float64 `json:"total_discount"`
	OrderAvg           float64 `json:"order_avg"`
	UnitsSales         int     `json:"units_sales"`
	ProfitMargin       float64 `json:"profit_margin"`
	TotalSales         float64 `json:"total_sales"`
	StateUSA           string  `json:"state_usa"`
	PercentagePromo    float64 `json:"percentage_promo"`
	PercentageNonPromo float64 `json:"percentage_non_promo"`
}

// StateSales feeds the choropleth map.
type StateSales struct {
	State      string  `json:"state"`
	Abbrev     string  `json:"abbrev"`
	TotalSales float64 `json:"total_sales"`
}

// MonthlyPromo feeds the promo vs non-promo bar chart.
type MonthlyPromo struct {
	Month         int     `json:"month"`
	PromoSales    float64 `json:"promo_sales"`
	NonPromoSales float64 `json:"non_promo_sales"`
}

// TreemapNode is one tile of the product treemap. Category nodes have
// an empty Parent and a zero ParentShare; sub-category nodes carry
// their share of the parent category's total as a percentage.
type TreemapNode struct {
	Label       string  `json:"label"`
	Parent      string  `json:"parent"`
	Value       float64 `json:"value"`
	ParentShare float64 `json:"parent_share"`
}

// KPISet holds the scalar metrics rendered as indicator cards in the
// dashboard header.
type KPISet struct {
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Discount     float64 `json:"discount"`
	Margin       float64 `json:"margin"`
	Orders       int     `json:"orders"`
	OrderAvg     float64 `json:"order_avg"`
	Units        int     `json:"units"`
	ProductCount int     `json:"product_count"`
}
