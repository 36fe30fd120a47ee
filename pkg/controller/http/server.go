package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/frontend"
	"github.com/secmon-lab/launchdash/pkg/domain/interfaces"
	"github.com/secmon-lab/launchdash/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard *DashboardHandler
}

// Option configures a Server
type Option func(*serverOptions)

type serverOptions struct {
	frontend http.FileSystem
	repo     interfaces.Repository
}

// WithFrontend serves the given file system instead of the embedded frontend
func WithFrontend(fs http.FileSystem) Option {
	return func(o *serverOptions) {
		o.frontend = fs
	}
}

// WithRepository exposes the stored dataset snapshots under /api/datasets
func WithRepository(repo interfaces.Repository) Option {
	return func(o *serverOptions) {
		o.repo = repo
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, dashboardUC interfaces.Dashboard, opts ...Option) (*Server, error) {
	if dashboardUC == nil {
		return nil, goerr.New("dashboard use case is nil")
	}

	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	dashboardHandler := NewDashboardHandler(dashboardUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(NoStore)
		r.Get("/layout", dashboardHandler.HandleLayout)
		r.Post("/update", dashboardHandler.HandleUpdate)
		r.Get("/dataset", dashboardHandler.HandleDataset)
		r.Get("/export.xlsx", dashboardHandler.HandleExport)

		if options.repo != nil {
			datasetsHandler := NewDatasetsHandler(options.repo)
			r.Get("/datasets", datasetsHandler.HandleList)
			r.Get("/datasets/{datasetID}", datasetsHandler.HandleGet)
		}
	})

	// Frontend routes
	fs := options.frontend
	if fs == nil {
		var err error
		fs, err = frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
				"error", err,
			)
		}
	}
	if fs != nil {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create frontend handler")
		}
		router.Handle("/*", spa)
	} else {
		router.Get("/*", handleFallbackHome)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		dashboard: dashboardHandler,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "launchdash",
	})
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>launchdash</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            text-align: center;
            margin-top: 4rem;
            color: #503D36;
        }
        code { background: #f3f3f3; padding: 0.1rem 0.3rem; }
    </style>
</head>
<body>
    <h1>SpaceX Launch Records Dashboard</h1>
    <p>The dashboard frontend is not embedded in this build.</p>
    <p>The chart API is available at <code>/api/layout</code> and <code>/api/update</code>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError logs err and writes it as a JSON error response with the status
// derived from its domain error
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	writeJSON(w, r, apperr.StatusCode(err), map[string]string{
		"error": err.Error(),
	})
}
