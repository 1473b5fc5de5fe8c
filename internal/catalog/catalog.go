// Package catalog holds the fixed retail taxonomy and lookup tables
// shared by the generator and the dashboard builder.
package catalog

import "retail-dashboard/internal/models"

// CategoryOrder fixes the display order of the five product categories.
var CategoryOrder = []string{
	"Electronics",
	"Furniture",
	"Clothing",
	"Home Appliances",
	"Sports",
}

// SubCategories maps each category to its five allowed sub-categories.
var SubCategories = map[string][]string{
	"Electronics":     {"Smartphones", "Laptops", "Tablets", "Headphones", "Smartwatches"},
	"Furniture":       {"Chairs", "Tables", "Sofas", "Desks", "Cabinets"},
	"Clothing":        {"Shirts", "Pants", "Dresses", "Jackets", "Shoes"},
	"Home Appliances": {"Refrigerators", "Washing Machines", "Microwaves", "Blenders", "Toasters"},
	"Sports":          {"Bicycles", "Treadmills", "Dumbbells", "Yoga Mats", "Sportswear"},
}

// ValueRange bounds the uniform product-value distribution per category.
type ValueRange struct {
	Min float64
	Max float64
}

var ValueRanges = map[string]ValueRange{
	"Electronics":     {Min: 100, Max: 2000},
	"Furniture":       {Min: 50, Max: 1500},
	"Clothing":        {Min: 10, Max: 200},
	"Home Appliances": {Min: 80, Max: 2500},
	"Sports":          {Min: 30, Max: 1200},
}

// ColorMap assigns each category its dashboard color.
var ColorMap = map[string]string{
	"Home Appliances": "#d8d8d8",
	"Electronics":     "#5a6d8b",
	"Sports":          "#66bfc7",
	"Furniture":       "#a14df2",
	"Clothing":        "#3333a6",
}

// ValidSubCategory reports whether sub belongs to category's fixed set.
func ValidSubCategory(category, sub string) bool {
	for _, s := range SubCategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// StatesUSA lists the 50 US states the sales generator samples from.
var StatesUSA = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma",
	"Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota", "Tennessee",
	"Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// StateAbbrev maps full state names to USPS codes, which is what the
// Plotly choropleth expects when locationmode is "USA-states".
var StateAbbrev = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
	"California": "CA", "Colorado": "CO", "Connecticut": "CT", "Delaware": "DE",
	"Florida": "FL", "Georgia": "GA", "Hawaii": "HI", "Idaho": "ID",
	"Illinois": "IL", "Indiana": "IN", "Iowa": "IA", "Kansas": "KS",
	"Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS",
	"Missouri": "MO", "Montana": "MT", "Nebraska": "NE", "Nevada": "NV",
	"New Hampshire": "NH", "New Jersey": "NJ", "New Mexico": "NM", "New York": "NY",
	"North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH", "Oklahoma": "OK",
	"Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI", "South Carolina": "SC",
	"South Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT",
	"Vermont": "VT", "Virginia": "VA", "Washington": "WA", "West Virginia": "WV",
	"Wisconsin": "WI", "Wyoming": "WY",
}

// SampleProducts is the embedded fallback used when products.csv is
// missing.
var SampleProducts = []models.Product{
	{ProductID: "P001", Category: "Electronics", SubCategory: "Laptops", Value: 1500},
	{ProductID: "P002", Category: "Electronics", SubCategory: "Smartphones", Value: 1200},
	{ProductID: "P003", Category: "Furniture", SubCategory: "Chairs", Value: 300},
	{ProductID: "P004", Category: "Furniture", SubCategory: "Tables", Value: 500},
	{ProductID: "P005", Category: "Home Appliances", SubCategory: "Refrigerators", Value: 800},
	{ProductID: "P006", Category: "Home Appliances", SubCategory: "Microwaves", Value: 200},
	{ProductID: "P007", Category: "Sports", SubCategory: "Bicycles", Value: 600},
	{ProductID: "P008", Category: "Clothing", SubCategory: "Shirts", Value: 150},
}

// SampleSales is the embedded fallback used when sales_summary.csv is
// missing. Rows satisfy the generator invariants.
var SampleSales = []models.SalesRecord{
	{Month: 1, Year: 2023, TotalCost: 80000, TotalDiscount: 4200, OrderAvg: 120, UnitsSales: 900, ProfitMargin: 0.20, TotalSales: 100000, StateUSA: "California", PercentagePromo: 0.40, PercentageNonPromo: 0.60},
	{Month: 1, Year: 2023, TotalCost: 60000, TotalDiscount: 3100, OrderAvg: 95, UnitsSales: 740, ProfitMargin: 0.25, TotalSales: 80000, StateUSA: "Texas", PercentagePromo: 0.30, PercentageNonPromo: 0.70},
	{Month: 2, Year: 2023, TotalCost: 90000, TotalDiscount: 5200, OrderAvg: 150, UnitsSales: 820, ProfitMargin: 0.10, TotalSales: 100000, StateUSA: "California", PercentagePromo: 0.55, PercentageNonPromo: 0.45},
	{Month: 2, Year: 2023, TotalCost: 52000, TotalDiscount: 2400, OrderAvg: 80, UnitsSales: 610, ProfitMargin: 0.35, TotalSales: 80000, StateUSA: "New York", PercentagePromo: 0.25, PercentageNonPromo: 0.75},
	{Month: 3, Year: 2023, TotalCost: 72000, TotalDiscount: 3900, OrderAvg: 110, UnitsSales: 700, ProfitMargin: 0.28, TotalSales: 100000, StateUSA: "Texas", PercentagePromo: 0.45, PercentageNonPromo: 0.55},
	{Month: 3, Year: 2023, TotalCost: 48000, TotalDiscount: 1800, OrderAvg: 75, UnitsSales: 560, ProfitMargin: 0.40, TotalSales: 80000, StateUSA: "New York", PercentagePromo: 0.35, PercentageNonPromo: 0.65},
}
