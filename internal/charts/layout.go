package charts

import (
	"time"

	"retail-dashboard/internal/models"
)

// Hand-tuned fractional coordinates of the composite layout. The KPI
// cards fill two header rows, the treemap takes the lower-left
// quadrant, the map the upper-right, and the bar chart the lower-right.
var (
	kpiTopRowY    = [2]float64{0.90, 1.00}
	kpiBottomRowY = [2]float64{0.78, 0.88}
	kpiColumnsX   = [4][2]float64{
		{0.00, 0.21},
		{0.26, 0.47},
		{0.52, 0.73},
		{0.78, 0.99},
	}

	treemapDomain = Domain{X: [2]float64{0.00, 0.47}, Y: [2]float64{0.00, 0.66}}
	geoDomain     = Domain{X: [2]float64{0.53, 1.00}, Y: [2]float64{0.36, 0.72}}
	barXDomain    = [2]float64{0.56, 0.99}
	barYDomain    = [2]float64{0.02, 0.28}
)

const (
	legendX = 0.00
	legendY = 0.715

	panelTitleSize = 14
)

// ExecutiveFigure composes the four chart primitives into the single
// dashboard figure. geojson may be nil, in which case the choropleth
// falls back to Plotly's built-in USA state outlines.
func ExecutiveFigure(
	states []models.StateSales,
	months []models.MonthlyPromo,
	nodes []models.TreemapNode,
	kpis models.KPISet,
	geojson []byte,
) *Figure {
	data := Treemap(nodes)
	data = append(data, StateMap(states, geojson))
	for _, bar := range PromoBars(months) {
		data = append(data, bar)
	}
	for _, card := range KPICards(kpis) {
		data = append(data, card)
	}

	hidden := false
	layout := &Layout{
		Title: &Title{
			Text:    "Executive Sales Summary",
			X:       0.02,
			Y:       0.985,
			XAnchor: "left",
			Font:    &Font{Size: 24},
		},
		ShowLegend: true,
		Legend: &Legend{
			Orientation: "h",
			X:           legendX,
			Y:           legendY,
			XAnchor:     "left",
			YAnchor:     "top",
		},
		Margin: &Margin{T: 120, L: 25, R: 25, B: 25},
		Geo: &GeoLayout{
			Scope:     "usa",
			Domain:    &geoDomain,
			ShowLakes: true,
			LakeColor: "white",
		},
		XAxis: &Axis{Domain: barXDomain, Anchor: "y"},
		YAxis: &Axis{
			Domain:  barYDomain,
			Anchor:  "x",
			Visible: &hidden,
		},
		BarMode: "group",
		Height:  920,
		HoverLabel: &HoverLabel{
			BGColor: "white",
			Font:    &Font{Size: 16, Family: "Rockwell"},
		},
		Annotations: panelTitles(),
	}

	return &Figure{Data: data, Layout: layout}
}

func panelTitles() []Annotation {
	font := &Font{Size: panelTitleSize}
	return []Annotation{
		{
			Text:    "<b>Product Distribution by Category and Subcategory</b>",
			X:       treemapDomain.X[0],
			Y:       0.69,
			XRef:    "paper",
			YRef:    "paper",
			XAnchor: "left",
			Font:    font,
		},
		{
			Text:    "<b>Total Sales by State</b>",
			X:       geoDomain.X[0],
			Y:       0.745,
			XRef:    "paper",
			YRef:    "paper",
			XAnchor: "left",
			Font:    font,
		},
		{
			Text:    "<b>Promotional vs Non-Promotional Sales by Month</b>",
			X:       barXDomain[0],
			Y:       0.315,
			XRef:    "paper",
			YRef:    "paper",
			XAnchor: "left",
			Font:    font,
		},
	}
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return "?"
	}
	return time.Month(m).String()[:3]
}
