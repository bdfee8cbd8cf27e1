package web

import (
	"fmt"

	"github.com/emiliopalmerini/aidash/internal/charts"
	"github.com/emiliopalmerini/aidash/internal/colormap"
	"github.com/emiliopalmerini/aidash/internal/dashboard"
	"github.com/emiliopalmerini/aidash/internal/domain"
	"github.com/emiliopalmerini/aidash/internal/ports"
	"github.com/emiliopalmerini/aidash/internal/util"
	"github.com/emiliopalmerini/aidash/internal/web/templates"
)

const (
	pageTitle = "Modern AI System Analysis Dashboard"
	pageIntro = "Analyze LLM responses, prompt engineering outputs, and AI capability metrics interactively!"
)

// BuildPage turns a loaded session into page data. Charts are rendered only
// when tab is the charts view or the page is static.
func BuildPage(s *dashboard.Session, tab string, static bool, generator string, metrics ports.DashboardMetrics) (templates.PageData, error) {
	data := templates.PageData{
		Title:        pageTitle,
		Intro:        pageIntro,
		Active:       tab,
		Static:       static,
		Generator:    generator,
		SessionID:    s.ID,
		LoadedAt:     util.FormatDateTime(s.LoadedAt),
		Responses:    buildGrid("responses", "Response metrics", s.Responses.Table, colormap.YlGnBu),
		Capabilities: buildGrid("capabilities", "Capability scores", s.Capabilities.Table, colormap.OrRd),
	}
	for _, w := range s.Warnings {
		data.Warnings = append(data.Warnings, w.String())
	}
	if static {
		data.Stylesheet = Stylesheet()
	}

	if static || tab == templates.TabCharts {
		panels, err := buildCharts(s.Figures(), metrics)
		if err != nil {
			return data, err
		}
		data.Charts = panels
	}
	return data, nil
}

// Stylesheet returns the embedded dashboard stylesheet.
func Stylesheet() string {
	b, err := staticFiles.ReadFile("static/style.css")
	if err != nil {
		return ""
	}
	return string(b)
}

// buildGrid shades every numeric cell on one scale spanning the whole table.
func buildGrid(id, title string, t *domain.Table, m colormap.Colormap) templates.Grid {
	var values []float64
	for i := range t.Rows {
		for j := range t.Columns {
			if v, ok := t.Cell(i, j); ok {
				values = append(values, v)
			}
		}
	}
	grad := colormap.NewGradient(m, values)

	g := templates.Grid{
		ID:        id,
		Title:     title,
		IndexName: t.IndexName,
		Columns:   t.Columns,
		Rows:      make([]templates.GridRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		cells := make([]templates.Cell, len(r.Cells))
		for j, raw := range r.Cells {
			v, ok := t.Cell(i, j)
			if !ok {
				cells[j] = templates.Cell{Text: raw}
				continue
			}
			bg := grad.Color(v)
			cells[j] = templates.Cell{
				Text:       util.FormatCell(v),
				Background: colormap.Hex(bg),
				Color:      colormap.TextColor(bg),
			}
		}
		g.Rows[i] = templates.GridRow{Label: r.Label, Cells: cells}
	}
	return g
}

func buildCharts(figs []charts.Figure, metrics ports.DashboardMetrics) ([]templates.ChartPanel, error) {
	panels := make([]templates.ChartPanel, 0, len(figs))
	for _, f := range figs {
		p := templates.ChartPanel{ID: f.ID, Title: f.Title}
		for _, e := range f.Legend {
			p.Legend = append(p.Legend, templates.LegendEntry{Name: e.Name, Color: e.Color})
		}
		if !f.Empty() {
			svg, err := charts.SVG(f)
			if err != nil {
				return nil, fmt.Errorf("failed to render chart %s: %w", f.ID, err)
			}
			p.SVG = svg
			metrics.ChartRendered(f.ID)
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// RenderedCharts counts panels that carry an SVG.
func RenderedCharts(panels []templates.ChartPanel) int {
	n := 0
	for _, p := range panels {
		if p.SVG != nil {
			n++
		}
	}
	return n
}

func validTab(tab string) bool {
	for _, t := range templates.Tabs {
		if t.ID == tab {
			return true
		}
	}
	return false
}
