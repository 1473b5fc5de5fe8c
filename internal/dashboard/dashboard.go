// Package dashboard assembles the aggregate views into the composite
// figure and renders the HTML artifact.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/charts"
	"retail-dashboard/internal/geo"
	"retail-dashboard/internal/ui/templates"
)

const pageTitle = "Executive Sales Summary"

type Builder struct {
	analytics *analytics.Service
	geo       *geo.Fetcher
	logger    *slog.Logger
}

func NewBuilder(svc *analytics.Service, fetcher *geo.Fetcher) *Builder {
	return &Builder{
		analytics: svc,
		geo:       fetcher,
		logger:    slog.Default(),
	}
}

// Figure builds the composite dashboard figure from the precomputed
// views. A failed boundary fetch degrades the map instead of failing
// the build.
func (b *Builder) Figure(ctx context.Context) *charts.Figure {
	var geojson []byte
	if b.geo != nil {
		body, err := b.geo.Boundaries(ctx)
		if err != nil {
			b.logger.Warn("geojson unavailable, using built-in state outlines", "error", err)
		} else {
			geojson = body
		}
	}

	return charts.ExecutiveFigure(
		b.analytics.StateSales(),
		b.analytics.MonthlyPromo(),
		b.analytics.TreemapNodes(),
		b.analytics.KPIs(),
		geojson,
	)
}

// FigureJSON serializes the current figure.
func (b *Builder) FigureJSON(ctx context.Context) (string, error) {
	return b.Figure(ctx).JSON()
}

// Render writes the dashboard page to w. live enables the Datastar
// refresh header for serve mode.
func (b *Builder) Render(ctx context.Context, w io.Writer, live bool) error {
	figJSON, err := b.FigureJSON(ctx)
	if err != nil {
		return fmt.Errorf("marshal figure: %w", err)
	}

	page := templates.Dashboard(templates.DashboardProps{
		Title:      pageTitle,
		FigureJSON: figJSON,
		Live:       live,
	})
	return page.Render(ctx, w)
}

// WriteHTML renders the static artifact to path.
func (b *Builder) WriteHTML(ctx context.Context, path string) error {
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := b.Render(ctx, f, false); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	b.logger.Info("dashboard written",
		"path", path,
		"duration", time.Since(start),
	)
	return nil
}
