package charts

import "retail-dashboard/internal/models"

const (
	promoColor    = "#66bfc7"
	nonPromoColor = "#5a6d8b"
)

// PromoBars builds the grouped promo / non-promo bar pair anchored to
// the dashboard's cartesian subplot.
func PromoBars(months []models.MonthlyPromo) []*BarTrace {
	x := make([]string, 0, len(months))
	promo := make([]float64, 0, len(months))
	nonPromo := make([]float64, 0, len(months))
	for _, m := range months {
		x = append(x, monthName(m.Month))
		promo = append(promo, m.PromoSales)
		nonPromo = append(nonPromo, m.NonPromoSales)
	}

	return []*BarTrace{
		{
			Type:          "bar",
			Name:          "Promo",
			X:             x,
			Y:             promo,
			Marker:        &BarMarker{Color: promoColor},
			XAxis:         "x",
			YAxis:         "y",
			HoverTemplate: "%{x} Promo: $%{y:,.2f}<extra></extra>",
			ShowLegend:    true,
		},
		{
			Type:          "bar",
			Name:          "Non-Promo",
			X:             x,
			Y:             nonPromo,
			Marker:        &BarMarker{Color: nonPromoColor},
			XAxis:         "x",
			YAxis:         "y",
			HoverTemplate: "%{x} Non-Promo: $%{y:,.2f}<extra></extra>",
			ShowLegend:    true,
		},
	}
}
