package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func renderString(t *testing.T, data PageData, static bool) string {
	t.Helper()
	data.Static = static
	var buf bytes.Buffer
	if err := Page(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func samplePage() PageData {
	return PageData{
		Title:     "Modern AI System Analysis Dashboard",
		Intro:     "Analyze LLM responses, prompt engineering outputs, and AI capability metrics interactively!",
		Active:    TabResponses,
		Generator: "project3_complete.py",
		SessionID: "abc",
		LoadedAt:  "2024-06-15 10:00:00",
		Responses: Grid{
			ID: "responses", Title: "Response metrics", IndexName: "",
			Columns: []string{"word_count"},
			Rows: []GridRow{
				{Label: "gpt<4>", Cells: []Cell{{Text: "10", Background: "#ffffd9", Color: "#000000"}}},
			},
		},
		Capabilities: Grid{ID: "capabilities", Title: "Capability scores", IndexName: "metric", Columns: []string{"GPT-4"}},
		Charts: []ChartPanel{
			{ID: "word-count", Title: "Word Count Comparison", SVG: []byte(`<svg id="wc"></svg>`)},
			{ID: "capabilities", Title: "AI Capabilities Grouped Comparison",
				Legend: []LegendEntry{{Name: "GPT-4", Color: "#4e79a7"}}},
		},
	}
}

func TestPage_Tabs(t *testing.T) {
	out := renderString(t, samplePage(), false)

	for _, want := range []string{
		"<title>Modern AI System Analysis Dashboard</title>",
		"Analyze LLM responses, prompt engineering outputs, and AI capability metrics interactively!",
		">Response Metrics Table</a>",
		">AI Capability Comparison</a>",
		">Visualizations</a>",
		`hx-get="/views/charts"`,
		"Note: Run project3_complete.py first to generate the analysis files.",
		"Session abc",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.Contains(out, `aria-selected="true" href="/?tab=responses"`) {
		t.Error("expected the responses tab to be active")
	}
	if strings.Contains(out, `id="view-charts"`) {
		t.Error("expected only the active view")
	}
}

func TestPage_EscapesLabels(t *testing.T) {
	out := renderString(t, samplePage(), false)
	if strings.Contains(out, "gpt<4>") {
		t.Error("expected row label to be escaped")
	}
	if !strings.Contains(out, "gpt&lt;4&gt;") {
		t.Error("expected escaped row label")
	}
	if !strings.Contains(out, `<td class="num" style="`) || !strings.Contains(out, "#ffffd9") {
		t.Error("expected cell gradient style")
	}
}

func TestPage_Static(t *testing.T) {
	out := renderString(t, samplePage(), true)
	for _, id := range []string{"view-responses", "view-capabilities", "view-charts"} {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("expected static page to contain %s", id)
		}
	}
	if strings.Contains(out, `class="tabs"`) {
		t.Error("expected no tab navigation in static mode")
	}
}

func TestView_Charts(t *testing.T) {
	var buf bytes.Buffer
	if err := View(samplePage(), TabCharts).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<svg id="wc"></svg>`) {
		t.Error("expected raw svg")
	}
	if !strings.Contains(out, "No data to plot.") {
		t.Error("expected empty-state panel")
	}
	if !strings.Contains(out, `<span class="swatch" style="`) || !strings.Contains(out, "#4e79a7") || !strings.Contains(out, "</span>GPT-4</li>") {
		t.Error("expected legend entry")
	}
	if strings.Contains(out, "<html") {
		t.Error("expected a fragment, not a document")
	}
}

func TestView_EmptyGrid(t *testing.T) {
	data := samplePage()
	data.Warnings = []string{"table capabilities has no rows"}

	var buf bytes.Buffer
	if err := View(data, TabCapabilities).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Capability scores has no rows.") {
		t.Error("expected empty-state message")
	}
	if !strings.Contains(out, `<p class="warning">table capabilities has no rows</p>`) {
		t.Error("expected warning")
	}
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	err := ErrorPage(ErrorData{
		Title:     "Dashboard unavailable",
		Message:   "Could not load ai_analysis_results.csv",
		Generator: "project3_complete.py",
	}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<!doctype html>") || !strings.Contains(out, "ai_analysis_results.csv") {
		t.Errorf("unexpected error page %q", out)
	}
}

func TestPage_StaticInlinesStylesheet(t *testing.T) {
	data := samplePage()
	data.Stylesheet = "body { margin: 0; }"
	out := renderString(t, data, true)

	if !strings.Contains(out, "<style>body { margin: 0; }</style>") {
		t.Error("expected the stylesheet inlined")
	}
	if strings.Contains(out, "/static/style.css") || strings.Contains(out, "htmx.org") {
		t.Error("expected no server or network assets on a standalone page")
	}
}

func TestPage_LinksStylesheet(t *testing.T) {
	out := renderString(t, samplePage(), false)
	if !strings.Contains(out, `<link rel="stylesheet" href="/static/style.css">`) {
		t.Error("expected the served stylesheet")
	}
	if strings.Contains(out, "<style>") {
		t.Error("expected no inline stylesheet")
	}
}

func TestErrorFragment_Escapes(t *testing.T) {
	var buf bytes.Buffer
	err := ErrorFragment(ErrorData{
		Title:     "Dashboard unavailable",
		Message:   "bad <value>",
		Generator: "project3_complete.py",
	}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "bad &lt;value&gt;") {
		t.Errorf("expected escaped message, got %q", out)
	}
	if strings.Contains(out, "<html") {
		t.Error("expected a fragment, not a document")
	}
}
