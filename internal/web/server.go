package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/ports"
	"github.com/emiliopalmerini/aidash/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router   *http.ServeMux
	addr     string
	loader   *dashboard.Loader
	metrics  ports.DashboardMetrics
	exporter ports.MetricsExporter
	log      logger.Logger
}

// NewServer wires the routes. metricsHandler may be nil, in which case
// /metrics is not served.
func NewServer(
	addr string,
	loader *dashboard.Loader,
	metrics ports.DashboardMetrics,
	exporter ports.MetricsExporter,
	metricsHandler http.Handler,
) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		addr:     addr,
		loader:   loader,
		metrics:  metrics,
		exporter: exporter,
		log:      logger.Named("web"),
	}
	s.setupRoutes(metricsHandler)
	return s
}

func (s *Server) setupRoutes(metricsHandler http.Handler) {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.handle("GET /health", "/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if metricsHandler != nil {
		s.router.Handle("GET /metrics", metricsHandler)
	}

	// Pages
	s.handle("GET /{$}", "/", s.handleIndex)
	s.handle("GET /views/{view}", "/views/{view}", s.handleView)
}

// handle registers h and counts its responses under route.
func (s *Server) handle(pattern, route string, h http.HandlerFunc) {
	s.router.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		s.metrics.HTTPRequest(route, rec.status)
	}))
}

// Handler returns the router behind the HTMX middleware.
func (s *Server) Handler() http.Handler {
	return middleware.HTMX(s.router)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info(ctx, "starting server", logger.String("addr", s.addr))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error(shutdownCtx, "server shutdown error", logger.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
