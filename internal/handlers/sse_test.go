package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderKPIStrip(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), createTestLogger())

	html, err := h.renderKPIStrip(h.analytics.KPIs())
	if err != nil {
		t.Fatalf("renderKPIStrip() failed: %v", err)
	}

	expected := []string{
		`id="kpi-strip"`,
		"$160000",
		"Revenue",
		"Profit",
		"Margin",
		"Avg Order",
		"Products",
	}
	for _, want := range expected {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered strip to contain %q", want)
		}
	}

	if count := strings.Count(html, `class="kpi-card"`); count != 8 {
		t.Errorf("expected 8 kpi cards, got %d", count)
	}
}

func TestHandleSSEKPIs(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), createTestLogger())

	req := httptest.NewRequest("GET", "/sse/kpis", nil)
	w := httptest.NewRecorder()
	h.HandleKPIs(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected text/event-stream Content-Type, got %s", ct)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("expected no-cache Cache-Control, got %s", cc)
	}

	body := w.Body.String()
	if !strings.Contains(body, "kpi-strip") {
		t.Error("expected event body to patch the kpi strip")
	}
	if !strings.Contains(body, "datastar-patch-elements") {
		t.Error("expected a patch-elements event")
	}
}

func TestHandleRefreshAll_WithoutPaths(t *testing.T) {
	// Reload fails when no file paths were ever loaded; the handler
	// must still answer with a patched error strip, not a 500.
	h := NewSSEHandlers(createTestAnalytics(), createTestLogger())

	req := httptest.NewRequest("GET", "/sse/refresh-all", nil)
	w := httptest.NewRecorder()
	h.HandleRefreshAll(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "refresh failed") {
		t.Error("expected the failure strip in the event body")
	}
}
