// Package charts builds the Plotly figure that composes the executive
// dashboard: a treemap, a choropleth map, a grouped bar chart, and KPI
// indicator cards positioned in one shared paper-coordinate space.
package charts

import (
	"encoding/json"
)

// Figure is the serializable Plotly figure: a list of traces plus the
// layout that positions them.
type Figure struct {
	Data   []any   `json:"data"`
	Layout *Layout `json:"layout"`
}

// JSON marshals the figure for embedding in the HTML document. The
// default HTML-escaping of encoding/json keeps the payload safe inside
// a script element.
func (f *Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Domain is a fractional [x0,x1]×[y0,y1] region of the paper.
type Domain struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	Font    *Font   `json:"font,omitempty"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
}

type Margin struct {
	T int `json:"t"`
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
}

type Axis struct {
	Domain  [2]float64 `json:"domain,omitempty"`
	Anchor  string     `json:"anchor,omitempty"`
	Visible *bool      `json:"visible,omitempty"`
	Title   *Title     `json:"title,omitempty"`
}

type GeoLayout struct {
	Scope     string  `json:"scope,omitempty"`
	Domain    *Domain `json:"domain,omitempty"`
	BGColor   string  `json:"bgcolor,omitempty"`
	LakeColor string  `json:"lakecolor,omitempty"`
	ShowLakes bool    `json:"showlakes,omitempty"`
	FitBounds string  `json:"fitbounds,omitempty"`
}

// Annotation places free text in paper coordinates; used for the
// per-panel titles.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	XAnchor   string  `json:"xanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

type HoverLabel struct {
	BGColor string `json:"bgcolor,omitempty"`
	Font    *Font  `json:"font,omitempty"`
}

type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	ShowLegend  bool         `json:"showlegend"`
	Legend      *Legend      `json:"legend,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	Geo         *GeoLayout   `json:"geo,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	BarMode     string       `json:"barmode,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Height      int          `json:"height,omitempty"`
	HoverLabel  *HoverLabel  `json:"hoverlabel,omitempty"`
	PaperBG     string       `json:"paper_bgcolor,omitempty"`
	PlotBG      string       `json:"plot_bgcolor,omitempty"`
}

// Trace types. Only the attributes the dashboard sets are modeled.

type TreemapTrace struct {
	Type          string         `json:"type"`
	Labels        []string       `json:"labels"`
	Parents       []string       `json:"parents"`
	Values        []float64      `json:"values"`
	BranchValues  string         `json:"branchvalues,omitempty"`
	TextTemplate  string         `json:"texttemplate,omitempty"`
	HoverTemplate []string       `json:"hovertemplate,omitempty"`
	Marker        *TreemapMarker `json:"marker,omitempty"`
	Domain        *Domain        `json:"domain,omitempty"`
}

type TreemapMarker struct {
	Colors []string     `json:"colors,omitempty"`
	Line   *TreemapLine `json:"line,omitempty"`
}

// TreemapLine carries per-tile border widths; category header tiles
// get width 0 so they read as whitespace.
type TreemapLine struct {
	Width []float64 `json:"width,omitempty"`
	Color string    `json:"color,omitempty"`
}

// ScatterTrace is used only for the invisible legend stubs that give
// the treemap a category legend.
type ScatterTrace struct {
	Type       string         `json:"type"`
	X          []any          `json:"x"`
	Y          []any          `json:"y"`
	Mode       string         `json:"mode,omitempty"`
	Marker     *ScatterMarker `json:"marker,omitempty"`
	Name       string         `json:"name,omitempty"`
	ShowLegend bool           `json:"showlegend"`
}

type ScatterMarker struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

type ChoroplethTrace struct {
	Type          string          `json:"type"`
	Locations     []string        `json:"locations"`
	Z             []float64       `json:"z"`
	Text          []string        `json:"text,omitempty"`
	LocationMode  string          `json:"locationmode,omitempty"`
	GeoJSON       json.RawMessage `json:"geojson,omitempty"`
	FeatureIDKey  string          `json:"featureidkey,omitempty"`
	ColorScale    string          `json:"colorscale,omitempty"`
	ColorBar      *ColorBar       `json:"colorbar,omitempty"`
	HoverTemplate string          `json:"hovertemplate,omitempty"`
	ShowScale     bool            `json:"showscale"`
}

type ColorBar struct {
	Title      *Title  `json:"title,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Len        float64 `json:"len,omitempty"`
	Thickness  int     `json:"thickness,omitempty"`
	TickPrefix string  `json:"tickprefix,omitempty"`
}

type BarTrace struct {
	Type          string     `json:"type"`
	Name          string     `json:"name,omitempty"`
	X             []string   `json:"x"`
	Y             []float64  `json:"y"`
	Marker        *BarMarker `json:"marker,omitempty"`
	XAxis         string     `json:"xaxis,omitempty"`
	YAxis         string     `json:"yaxis,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	ShowLegend    bool       `json:"showlegend"`
}

type BarMarker struct {
	Color string `json:"color,omitempty"`
}

type IndicatorTrace struct {
	Type   string           `json:"type"`
	Mode   string           `json:"mode"`
	Value  float64          `json:"value"`
	Title  *Title           `json:"title,omitempty"`
	Number *IndicatorNumber `json:"number,omitempty"`
	Domain *Domain          `json:"domain"`
}

type IndicatorNumber struct {
	Prefix      string `json:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	ValueFormat string `json:"valueformat,omitempty"`
	Font        *Font  `json:"font,omitempty"`
}
