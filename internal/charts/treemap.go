package charts

import (
	"fmt"

	"retail-dashboard/internal/catalog"
	"retail-dashboard/internal/models"
)

const treemapTextTemplate = "<b>%{label}</b><br><b>%{value}</b><br><b>%{percentParent:.1%}</b>"

// Treemap builds the category/sub-category treemap trace plus the
// invisible scatter stubs that put each category color in the legend.
// Category header tiles are painted white with no border and a
// suppressed hover so only the sub-category tiles read as data.
func Treemap(nodes []models.TreemapNode) []any {
	labels := make([]string, 0, len(nodes))
	parents := make([]string, 0, len(nodes))
	values := make([]float64, 0, len(nodes))
	colors := make([]string, 0, len(nodes))
	widths := make([]float64, 0, len(nodes))
	hovers := make([]string, 0, len(nodes))

	for _, n := range nodes {
		labels = append(labels, n.Label)
		parents = append(parents, n.Parent)
		values = append(values, n.Value)

		if n.Parent == "" {
			colors = append(colors, "white")
			widths = append(widths, 0)
			hovers = append(hovers, "<extra></extra>")
			continue
		}

		color, ok := catalog.ColorMap[n.Parent]
		if !ok {
			color = "#d8d8d8"
		}
		colors = append(colors, color)
		widths = append(widths, 1)
		hovers = append(hovers, fmt.Sprintf(
			"<b>%s</b><br>Value: %.2f<br>Percentage: %.1f%%<extra></extra>",
			n.Label, n.Value, n.ParentShare,
		))
	}

	trace := &TreemapTrace{
		Type:          "treemap",
		Labels:        labels,
		Parents:       parents,
		Values:        values,
		BranchValues:  "total",
		TextTemplate:  treemapTextTemplate,
		HoverTemplate: hovers,
		Marker: &TreemapMarker{
			Colors: colors,
			Line:   &TreemapLine{Width: widths, Color: "white"},
		},
		Domain: &treemapDomain,
	}

	data := []any{trace}
	for _, cat := range catalog.CategoryOrder {
		data = append(data, &ScatterTrace{
			Type:       "scatter",
			X:          []any{nil},
			Y:          []any{nil},
			Mode:       "markers",
			Marker:     &ScatterMarker{Size: 15, Color: catalog.ColorMap[cat]},
			Name:       cat,
			ShowLegend: true,
		})
	}
	return data
}
