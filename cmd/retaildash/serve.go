package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/dashboard"
	"retail-dashboard/internal/geo"
	"retail-dashboard/internal/middleware"
	"retail-dashboard/internal/server"
)

const (
	renderTimeout  = 10 * time.Second
	csvLoadTimeout = 30 * time.Second
	cacheMaxAge    = "public, max-age=300"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP with live refresh",
	Long: `Serves the dashboard page plus JSON endpoints for each aggregate
view and SSE endpoints that re-read the datasets and patch the page.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	svc := analytics.NewService()

	loadCtx, cancel := context.WithTimeout(cmd.Context(), csvLoadTimeout)
	defer cancel()

	start := time.Now()
	if err := svc.Load(loadCtx, cfg.ProductsPath(), cfg.SalesPath()); err != nil {
		return err
	}
	logger.Info("datasets loaded", "duration", time.Since(start))

	fetcher := geo.NewFetcher(cfg.Data.GeoJSONURL, cfg.Data.GeoCacheDir)
	builder := dashboard.NewBuilder(svc, fetcher)

	templateHandlers := &server.TemplateHandlers{
		Dashboard: func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
			defer cancel()

			w.Header().Set("Cache-Control", cacheMaxAge)
			if err := builder.Render(ctx, w, true); err != nil {
				http.Error(w, "render error", http.StatusInternalServerError)
			}
		},
	}

	srv := server.NewServer(svc, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      middlewareChain(srv),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down analytics service")
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
