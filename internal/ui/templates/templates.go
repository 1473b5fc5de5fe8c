// Package templates holds the templ components for the dashboard page
// shell. Components are composed in Go against the templ runtime.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const (
	plotlyCDN   = "https://cdn.plot.ly/plotly-2.32.0.min.js"
	datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"
)

const pageCSS = `body{margin:0;background:#fafafa;font-family:"Segoe UI",Helvetica,Arial,sans-serif}
#dashboard{max-width:1440px;margin:0 auto;background:white}
header{max-width:1440px;margin:0 auto;padding:8px 16px;display:flex;align-items:center;gap:16px}
header button{padding:6px 14px;border:1px solid #5a6d8b;border-radius:4px;background:white;cursor:pointer}
#kpi-strip{display:flex;gap:12px;flex-wrap:wrap}
.kpi-card{padding:4px 12px;border:1px solid #e0e0e0;border-radius:4px;background:white}
.kpi-card .label{font-size:11px;color:#5a6d8b}
.kpi-card .value{font-size:16px;font-weight:bold}`

// DashboardProps carries everything the page shell needs.
type DashboardProps struct {
	Title      string
	FigureJSON string
	Live       bool
}

// Dashboard renders the full HTML document: the Plotly bundle, the
// figure payload in a JSON script element, and the bootstrap script.
// Live mode adds the Datastar bundle and the refresh header targeted
// by the SSE handlers.
func Dashboard(props DashboardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<script src="%s"></script>
`, templ.EscapeString(props.Title), plotlyCDN); err != nil {
			return err
		}

		if props.Live {
			if _, err := fmt.Fprintf(w, "<script type=\"module\" src=\"%s\"></script>\n", datastarCDN); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "<style>%s</style>\n</head>\n<body>\n", pageCSS); err != nil {
			return err
		}

		if props.Live {
			if err := liveHeader().Render(ctx, w); err != nil {
				return err
			}
		}

		// The figure payload is HTML-escaped JSON, safe inside a
		// script element.
		_, err := fmt.Fprintf(w, `<div id="dashboard"></div>
<script type="application/json" id="figure-data">%s</script>
<script>
const fig = JSON.parse(document.getElementById("figure-data").textContent);
Plotly.newPlot("dashboard", fig.data, fig.layout, {responsive: true, displaylogo: false});
</script>
</body>
</html>
`, props.FigureJSON)
		return err
	})
}

// liveHeader is the serve-mode toolbar: a refresh button wired to the
// Datastar SSE endpoint and the KPI strip it patches.
func liveHeader() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<header>
<button data-on-click="@get('/sse/refresh-all')">Refresh Data</button>
<div id="kpi-strip" data-on-load="@get('/sse/kpis')"></div>
</header>
`)
		return err
	})
}
