package web

import (
	"context"
	"net/http"
	"time"

	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/logger"
	"github.com/emiliopalmerini/aidash/internal/ports"
	"github.com/emiliopalmerini/aidash/internal/shared/middleware"
	"github.com/emiliopalmerini/aidash/internal/web/templates"
)

const (
	surfaceWeb = "web"
	// viewTarget is the id of the element tab links swap.
	viewTarget = "view"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !validTab(tab) {
		tab = templates.TabResponses
	}

	// htmx swaps #view with the fragment only; other targets get the page.
	fragment := middleware.IsHTMX(r) && middleware.Target(r) == viewTarget
	s.renderPass(w, r, tab, fragment)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	tab := r.PathValue("view")
	if !validTab(tab) {
		http.Error(w, "Unknown view", http.StatusNotFound)
		return
	}
	s.renderPass(w, r, tab, true)
}

// renderPass loads a fresh session and renders either the full page or the
// view fragment for tab.
func (s *Server) renderPass(w http.ResponseWriter, r *http.Request, tab string, fragment bool) {
	ctx := r.Context()
	start := time.Now()

	session, err := s.loader.Load(ctx)
	if err != nil {
		s.export(ctx, dashboard.FailedRenderMetrics(surfaceWeb, err, time.Since(start)))
		s.renderError(w, r, err, fragment)
		return
	}

	data, err := BuildPage(session, tab, false, s.loader.Generator(), s.metrics)
	if err != nil {
		s.export(ctx, dashboard.FailedRenderMetrics(surfaceWeb, err, time.Since(start)))
		s.renderError(w, r, err, fragment)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if fragment {
		err = templates.View(data, tab).Render(ctx, w)
	} else {
		err = templates.Page(data).Render(ctx, w)
	}
	if err != nil {
		s.log.Error(ctx, "failed to write page", logger.String("session_id", session.ID), logger.Error(err))
		return
	}

	s.export(ctx, session.RenderMetrics(surfaceWeb, RenderedCharts(data.Charts), time.Since(start)))
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error, fragment bool) {
	ctx := r.Context()
	s.log.Error(ctx, "render pass failed", logger.String("path", r.URL.Path), logger.Error(err))

	data := templates.ErrorData{
		Title:     "Dashboard unavailable",
		Message:   dashboard.UserMessage(err, s.loader.Generator()),
		Generator: s.loader.Generator(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if middleware.IsHTMX(r) {
		// htmx does not swap error responses; reload into the full error page.
		w.Header().Set("HX-Refresh", "true")
	}
	w.WriteHeader(http.StatusInternalServerError)
	if fragment {
		_ = templates.ErrorFragment(data).Render(ctx, w)
		return
	}
	_ = templates.ErrorPage(data).Render(ctx, w)
}

func (s *Server) export(ctx context.Context, m *ports.RenderMetrics) {
	if err := s.exporter.ExportRenderMetrics(ctx, m); err != nil {
		s.log.Warn(ctx, "failed to export render metrics", logger.Error(err))
	}
}
