package charts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/emiliopalmerini/aidash/internal/domain"
)

func testResponses(t *testing.T, rows ...domain.Row) *domain.ResponseMetrics {
	t.Helper()
	tbl, err := domain.NewTable("responses", "", domain.ResponseColumns, rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	m, err := domain.NewResponseMetrics(tbl)
	if err != nil {
		t.Fatalf("NewResponseMetrics: %v", err)
	}
	return m
}

func testCapabilities(t *testing.T, columns []string, rows ...domain.Row) *domain.CapabilityAssessment {
	t.Helper()
	tbl, err := domain.NewTable("capabilities", "metric", columns, rows)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	c, err := domain.NewCapabilityAssessment(tbl)
	if err != nil {
		t.Fatalf("NewCapabilityAssessment: %v", err)
	}
	return c
}

func threeResponses(t *testing.T) *domain.ResponseMetrics {
	return testResponses(t,
		domain.Row{Label: "gpt", Cells: []string{"10", "60", "0.5", "0.8", "2"}},
		domain.Row{Label: "claude", Cells: []string{"20", "55", "0.6", "0.7", "3"}},
		domain.Row{Label: "gemini", Cells: []string{"30", "-5", "0.4", "0.2", "4"}},
	)
}

func fiveCapabilities(t *testing.T) *domain.CapabilityAssessment {
	return testCapabilities(t, []string{"GPT-4", "Claude", "Gemini", "Llama", "Mistral"},
		domain.Row{Label: "reasoning", Cells: []string{"9", "8.5", "8", "7", "6.5"}},
		domain.Row{Label: "coding", Cells: []string{"8.5", "9", "7.5", "7", "7"}},
	)
}

func TestBarFigure_WordCountExample(t *testing.T) {
	f := BarFigure(WordCountBars, threeResponses(t))

	if len(f.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(f.Bars))
	}
	wantHeights := []float64{10, 20, 30}
	wantLabels := []string{"gpt", "claude", "gemini"}
	for i, b := range f.Bars {
		if b.Height != wantHeights[i] {
			t.Errorf("bar %d: expected height %v, got %v", i, wantHeights[i], b.Height)
		}
		if b.Label != wantLabels[i] {
			t.Errorf("bar %d: expected label %s, got %s", i, wantLabels[i], b.Label)
		}
		if b.X != float64(i) {
			t.Errorf("bar %d: expected x %d, got %v", i, i, b.X)
		}
	}
	if f.Title != "Word Count Comparison" || f.YLabel != "Number of Words" {
		t.Errorf("unexpected labels %q / %q", f.Title, f.YLabel)
	}
}

func TestBarFigure_SentimentAxis(t *testing.T) {
	f := BarFigure(SentimentBars, threeResponses(t))
	if f.YRange == nil || f.YRange.Min != 0 || f.YRange.Max != 1 {
		t.Errorf("expected sentiment y range [0,1], got %+v", f.YRange)
	}
	if f.YLabel != "Polarity (0: Negative, 1: Positive)" {
		t.Errorf("unexpected y label %q", f.YLabel)
	}
}

func TestBattery_OrderAndCounts(t *testing.T) {
	resp := threeResponses(t)
	caps := fiveCapabilities(t)

	figs := Battery(resp, caps)

	wantIDs := []string{
		"word-count", "readability", "vocabulary-richness", "sentiment",
		"vocabulary-vs-readability", "sentence-count", "capabilities",
	}
	if len(figs) != len(wantIDs) {
		t.Fatalf("expected %d figures, got %d", len(wantIDs), len(figs))
	}
	for i, f := range figs {
		if f.ID != wantIDs[i] {
			t.Errorf("figure %d: expected %s, got %s", i, wantIDs[i], f.ID)
		}
		switch f.Kind {
		case KindBar:
			if len(f.Bars) != 3 {
				t.Errorf("%s: expected 3 bars, got %d", f.ID, len(f.Bars))
			}
		case KindBubble:
			if len(f.Points) != 3 {
				t.Errorf("%s: expected 3 points, got %d", f.ID, len(f.Points))
			}
		}
	}

	for _, spec := range []BarSpec{WordCountBars, ReadabilityBars, VocabularyBars, SentimentBars, SentenceBars} {
		f := BarFigure(spec, resp)
		values := resp.Column(spec.Column)
		for i, h := range f.Heights() {
			if h != values[i] {
				t.Errorf("%s bar %d: expected %v, got %v", spec.ID, i, values[i], h)
			}
		}
	}
}

func TestBubbleFigure(t *testing.T) {
	f := BubbleFigure(threeResponses(t))

	for i, p := range f.Points {
		wantArea := []float64{40, 80, 120}[i]
		if p.Area != wantArea {
			t.Errorf("point %d: expected area %v, got %v", i, wantArea, p.Area)
		}
	}
	if f.Points[0].X != 0.5 || f.Points[0].Y != 60 || f.Points[0].Label != "gpt" {
		t.Errorf("unexpected first point %+v", f.Points[0])
	}
	if f.Points[0].Color != "#00ffff" || f.Points[2].Color != "#ff00ff" {
		t.Errorf("expected cool colormap ends, got %s and %s", f.Points[0].Color, f.Points[2].Color)
	}
	if f.Alpha != 0.7 {
		t.Errorf("expected alpha 0.7, got %v", f.Alpha)
	}
}

func TestBubbleArea_Monotonic(t *testing.T) {
	resp := testResponses(t,
		domain.Row{Label: "a", Cells: []string{"5", "1", "0.1", "0", "1"}},
		domain.Row{Label: "b", Cells: []string{"50", "1", "0.1", "0", "1"}},
		domain.Row{Label: "c", Cells: []string{"500", "1", "0.1", "0", "1"}},
		domain.Row{Label: "d", Cells: []string{"5000", "1", "0.1", "0", "1"}},
	)
	f := BubbleFigure(resp)
	for i := 1; i < len(f.Points); i++ {
		if f.Points[i].Area <= f.Points[i-1].Area {
			t.Errorf("area not increasing at %d: %v <= %v", i, f.Points[i].Area, f.Points[i-1].Area)
		}
		if BubbleRadius(f.Points[i].Area) <= BubbleRadius(f.Points[i-1].Area) {
			t.Errorf("radius not increasing at %d", i)
		}
	}
	if BubbleRadius(0) != 0 || BubbleRadius(-4) != 0 {
		t.Error("expected zero radius for non-positive area")
	}
}

func TestGroupedBarFigure(t *testing.T) {
	caps := fiveCapabilities(t)
	f := GroupedBarFigure(caps)

	if got, want := len(f.Bars), 5*2; got != want {
		t.Fatalf("expected %d bars, got %d", want, got)
	}

	colorBySeries := map[int]string{}
	for _, b := range f.Bars {
		if b.Width != GroupBarWidth {
			t.Errorf("expected width %v, got %v", GroupBarWidth, b.Width)
		}
		if c, ok := colorBySeries[b.Series]; ok && c != b.Color {
			t.Errorf("series %d has inconsistent colours %s and %s", b.Series, c, b.Color)
		}
		colorBySeries[b.Series] = b.Color
	}
	if colorBySeries[4] != CapabilityPalette[0] {
		t.Errorf("expected palette to cycle for the fifth column, got %s", colorBySeries[4])
	}

	// Column 2 (Gemini) on row 1 (coding).
	var found bool
	for _, b := range f.Bars {
		if b.Series == 2 && b.Label == "coding" {
			found = true
			if want := 1 + 2*GroupBarWidth; b.X != want {
				t.Errorf("expected x %v, got %v", want, b.X)
			}
			if b.Height != 7.5 {
				t.Errorf("expected height 7.5, got %v", b.Height)
			}
		}
	}
	if !found {
		t.Error("missing Gemini/coding bar")
	}

	if len(f.Ticks) != 2 || f.Ticks[1].Value != 1+1.5*GroupBarWidth || f.Ticks[1].Label != "coding" {
		t.Errorf("unexpected ticks %+v", f.Ticks)
	}
	if len(f.Legend) != 5 || f.Legend[1].Name != "Claude" || f.Legend[1].Color != "#f28e2c" {
		t.Errorf("unexpected legend %+v", f.Legend)
	}
}

func TestBattery_EmptyTables(t *testing.T) {
	resp := testResponses(t)
	caps := testCapabilities(t, []string{"GPT-4", "Claude"})

	for _, f := range Battery(resp, caps) {
		if !f.Empty() {
			t.Errorf("%s: expected empty figure", f.ID)
		}
		if _, err := SVG(f); !errors.Is(err, ErrEmptyFigure) {
			t.Errorf("%s: expected ErrEmptyFigure, got %v", f.ID, err)
		}
	}
}

func TestSVG_RendersEveryChart(t *testing.T) {
	for _, f := range Battery(threeResponses(t), fiveCapabilities(t)) {
		t.Run(f.ID, func(t *testing.T) {
			svg, err := SVG(f)
			if err != nil {
				t.Fatalf("SVG: %v", err)
			}
			if !bytes.HasPrefix(bytes.TrimSpace(svg), []byte("<svg")) {
				t.Errorf("expected svg document, got %.40q", svg)
			}
			if !bytes.Contains(svg, []byte(f.Title)) {
				t.Errorf("expected title %q in output", f.Title)
			}
		})
	}
}

func TestSVG_SingleRow(t *testing.T) {
	resp := testResponses(t,
		domain.Row{Label: "only", Cells: []string{"0", "0", "0", "0", "0"}},
	)
	caps := testCapabilities(t, []string{"GPT-4"},
		domain.Row{Label: "reasoning", Cells: []string{"0"}},
	)
	for _, f := range Battery(resp, caps) {
		if _, err := SVG(f); err != nil {
			t.Errorf("%s: unexpected error for degenerate data: %v", f.ID, err)
		}
	}
}

func TestRanges(t *testing.T) {
	r := barYRange(Figure{Bars: []Bar{{Height: 4}, {Height: 4}}})
	if r.Min != 0 || r.Max <= 4 {
		t.Errorf("expected [0,>4], got %+v", r)
	}
	r = barYRange(Figure{Bars: []Bar{{Height: 0}}})
	if r.Max-r.Min <= 0 {
		t.Errorf("expected non-zero range, got %+v", r)
	}
	r = barYRange(Figure{Bars: []Bar{{Height: -10}, {Height: 10}}})
	if r.Min >= -10 || r.Max <= 10 {
		t.Errorf("expected padded range around [-10,10], got %+v", r)
	}
	r = barYRange(Figure{YRange: &Range{Min: 0, Max: 1}, Bars: []Bar{{Height: 0.4}, {Height: 0.9}}})
	if r.Min != 0 || r.Max != 1 {
		t.Errorf("expected the pinned [0,1] range, got %+v", r)
	}
	r = barYRange(Figure{YRange: &Range{Min: 0, Max: 1}, Bars: []Bar{{Height: -0.5}, {Height: 0.9}}})
	if r.Min >= -0.5 || r.Max != 1 {
		t.Errorf("expected the range widened below -0.5, got %+v", r)
	}
	fr := fitRange([]float64{3})
	if fr.Max-fr.Min <= 0 {
		t.Errorf("expected non-zero fitted range, got %+v", fr)
	}
	xr := barXRange([]Bar{{X: 0, Width: 0.8}, {X: 2, Width: 0.8}}, nil)
	if xr.Min >= -0.4 || xr.Max <= 2.4 {
		t.Errorf("expected x range to cover bar edges, got %+v", xr)
	}
	xr = barXRange([]Bar{{X: 0, Width: GroupBarWidth}}, []Tick{{Value: 1.5 * GroupBarWidth}})
	if xr.Max <= 1.5*GroupBarWidth {
		t.Errorf("expected x range to cover the group tick, got %+v", xr)
	}
}
