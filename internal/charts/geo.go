package charts

import (
	"encoding/json"

	"retail-dashboard/internal/models"
)

// StateMap builds the choropleth trace. With embedded GeoJSON the
// trace keys features by state name; without it, Plotly's built-in
// "USA-states" outlines are addressed by USPS abbreviation, so states
// lacking an abbreviation are dropped.
func StateMap(states []models.StateSales, geojson []byte) *ChoroplethTrace {
	trace := &ChoroplethTrace{
		Type:          "choropleth",
		ColorScale:    "Blues",
		ShowScale:     true,
		HoverTemplate: "<b>%{text}</b><br>Sales: $%{z:,.2f}<extra></extra>",
		ColorBar: &ColorBar{
			Title:      &Title{Text: "Total Sales"},
			X:          1.0,
			Y:          geoDomain.Y[0] + (geoDomain.Y[1]-geoDomain.Y[0])/2,
			Len:        geoDomain.Y[1] - geoDomain.Y[0],
			Thickness:  12,
			TickPrefix: "$",
		},
	}

	if len(geojson) > 0 {
		trace.GeoJSON = json.RawMessage(geojson)
		trace.FeatureIDKey = "properties.name"
		for _, s := range states {
			trace.Locations = append(trace.Locations, s.State)
			trace.Z = append(trace.Z, s.TotalSales)
			trace.Text = append(trace.Text, s.State)
		}
		return trace
	}

	trace.LocationMode = "USA-states"
	for _, s := range states {
		if s.Abbrev == "" {
			continue
		}
		trace.Locations = append(trace.Locations, s.Abbrev)
		trace.Z = append(trace.Z, s.TotalSales)
		trace.Text = append(trace.Text, s.State)
	}
	return trace
}
