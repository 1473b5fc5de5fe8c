package charts

import "retail-dashboard/internal/models"

var (
	kpiTitleFont  = &Font{Size: 13, Color: "#5a6d8b"}
	kpiNumberFont = &Font{Size: 26}
	kpiSmallFont  = &Font{Size: 20}
)

// KPICards renders the eight header metrics as indicator traces: four
// headline cards in the top row and four secondary cards beneath them.
func KPICards(k models.KPISet) []*IndicatorTrace {
	top := []*IndicatorTrace{
		card("Total Revenue", k.Revenue, &IndicatorNumber{Prefix: "$", ValueFormat: ",.0f", Font: kpiNumberFont}),
		card("Total Profit", k.Profit, &IndicatorNumber{Prefix: "$", ValueFormat: ",.0f", Font: kpiNumberFont}),
		card("Orders", float64(k.Orders), &IndicatorNumber{ValueFormat: ",.0f", Font: kpiNumberFont}),
		card("Avg Order Value", k.OrderAvg, &IndicatorNumber{Prefix: "$", ValueFormat: ",.2f", Font: kpiNumberFont}),
	}
	bottom := []*IndicatorTrace{
		card("Total Discount", k.Discount, &IndicatorNumber{Prefix: "$", ValueFormat: ",.0f", Font: kpiSmallFont}),
		card("Profit Margin", k.Margin*100, &IndicatorNumber{Suffix: "%", ValueFormat: ".1f", Font: kpiSmallFont}),
		card("Units Sold", float64(k.Units), &IndicatorNumber{ValueFormat: ",.0f", Font: kpiSmallFont}),
		card("Products", float64(k.ProductCount), &IndicatorNumber{ValueFormat: ",.0f", Font: kpiSmallFont}),
	}

	cards := make([]*IndicatorTrace, 0, 8)
	for i, c := range top {
		c.Domain = &Domain{X: kpiColumnsX[i], Y: kpiTopRowY}
		cards = append(cards, c)
	}
	for i, c := range bottom {
		c.Domain = &Domain{X: kpiColumnsX[i], Y: kpiBottomRowY}
		cards = append(cards, c)
	}
	return cards
}

func card(title string, value float64, number *IndicatorNumber) *IndicatorTrace {
	return &IndicatorTrace{
		Type:   "indicator",
		Mode:   "number",
		Value:  value,
		Title:  &Title{Text: title, Font: kpiTitleFont},
		Number: number,
	}
}
