package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/models"
)

var kpiStripTemplate = template.Must(template.New("kpiStrip").Parse(`
<div id="kpi-strip">
<div class="kpi-card"><div class="label">Revenue</div><div class="value">${{printf "%.0f" .Revenue}}</div></div>
<div class="kpi-card"><div class="label">Profit</div><div class="value">${{printf "%.0f" .Profit}}</div></div>
<div class="kpi-card"><div class="label">Discount</div><div class="value">${{printf "%.0f" .Discount}}</div></div>
<div class="kpi-card"><div class="label">Margin</div><div class="value">{{printf "%.1f" .MarginPct}}%</div></div>
<div class="kpi-card"><div class="label">Orders</div><div class="value">{{.Orders}}</div></div>
<div class="kpi-card"><div class="label">Avg Order</div><div class="value">${{printf "%.2f" .OrderAvg}}</div></div>
<div class="kpi-card"><div class="label">Units</div><div class="value">{{.Units}}</div></div>
<div class="kpi-card"><div class="label">Products</div><div class="value">{{.ProductCount}}</div></div>
</div>`))

type SSEHandlers struct {
	analytics *analytics.Service
	logger    *slog.Logger
}

func NewSSEHandlers(svc *analytics.Service, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: svc,
		logger:    logger,
	}
}

type kpiStripData struct {
	models.KPISet
	MarginPct float64
}

func (h *SSEHandlers) renderKPIStrip(kpis models.KPISet) (string, error) {
	var buf strings.Builder
	err := kpiStripTemplate.Execute(&buf, kpiStripData{
		KPISet:    kpis,
		MarginPct: kpis.Margin * 100,
	})
	return buf.String(), err
}

// HandleKPIs patches the header KPI strip with the current scalars.
func (h *SSEHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderKPIStrip(h.analytics.KPIs())
	if err != nil {
		h.logger.Error("render kpi strip", "error", err)
		return
	}
	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll re-reads the datasets, patches the KPI strip, and
// pushes every aggregate view as signals for the page scripts.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if err := h.analytics.Reload(r.Context()); err != nil {
		h.logger.Error("reload datasets", "error", err)
		sse.PatchElements(`<div id="kpi-strip">⚠️ refresh failed</div>`)
		return
	}

	html, err := h.renderKPIStrip(h.analytics.KPIs())
	if err != nil {
		h.logger.Error("render kpi strip", "error", err)
		return
	}
	sse.PatchElements(html)

	signals, err := json.Marshal(map[string]any{
		"stateSales":   h.analytics.StateSales(),
		"monthlyPromo": h.analytics.MonthlyPromo(),
		"treemapNodes": h.analytics.TreemapNodes(),
		"kpis":         h.analytics.KPIs(),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
