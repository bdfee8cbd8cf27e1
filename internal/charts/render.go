package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/aidash/internal/colormap"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	wideWidth     = 1000
	wideHeight    = 500

	// axisMargin pads fitted axes like matplotlib's default 5% margin.
	axisMargin = 0.05
)

// ErrEmptyFigure is returned when asked to render a figure without marks.
var ErrEmptyFigure = errors.New("figure has no data")

// SVG renders f as a standalone SVG document.
func SVG(f Figure) ([]byte, error) {
	if f.Empty() {
		return nil, ErrEmptyFigure
	}

	var ch chart.Chart
	switch f.Kind {
	case KindBubble:
		ch = bubbleChart(f)
	case KindBar, KindGroupedBar:
		ch = barChart(f)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", f.Kind)
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.ID, err)
	}
	return buf.Bytes(), nil
}

func size(f Figure) (int, int) {
	w, h := f.Width, f.Height
	if w == 0 || h == 0 {
		if f.Kind == KindGroupedBar {
			return wideWidth, wideHeight
		}
		return defaultWidth, defaultHeight
	}
	return w, h
}

func baseChart(f Figure) chart.Chart {
	w, h := size(f)
	return chart.Chart{
		Title:  f.Title,
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Name: f.XLabel},
		YAxis: chart.YAxis{Name: f.YLabel},
	}
}

// barChart draws rectangles through a custom element on top of an
// invisible anchor series; go-chart's own BarChart cannot offset bars inside
// a category group.
func barChart(f Figure) chart.Chart {
	xr := barXRange(f.Bars, f.Ticks)
	yr := barYRange(f)

	ch := baseChart(f)
	ch.XAxis.Range = &chart.ContinuousRange{Min: xr.Min, Max: xr.Max}
	ch.XAxis.Ticks = edgeTicks(xr, f.Ticks)
	ch.YAxis.Range = &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}
	ch.Series = []chart.Series{anchorSeries(xr)}
	ch.Elements = []chart.Renderable{drawBars(f.Bars, xr, yr)}
	return ch
}

func bubbleChart(f Figure) chart.Chart {
	xs := make([]float64, len(f.Points))
	ys := make([]float64, len(f.Points))
	radii := make([]float64, len(f.Points))
	colors := make([]drawing.Color, len(f.Points))
	annotations := make([]chart.Value2, len(f.Points))

	alpha := uint8(math.Round(clamp01(f.Alpha) * 255))
	if f.Alpha == 0 {
		alpha = 255
	}

	for i, p := range f.Points {
		xs[i], ys[i] = p.X, p.Y
		radii[i] = BubbleRadius(p.Area)
		colors[i] = colormap.ParseHex(p.Color).WithAlpha(alpha)
		annotations[i] = chart.Value2{XValue: p.X, YValue: p.Y, Label: p.Label}
	}

	xr := fitRange(xs)
	yr := fitRange(ys)
	if f.YRange != nil {
		yr = widen(*f.YRange, yr.Min, yr.Max)
	}

	ch := baseChart(f)
	ch.XAxis.Range = &chart.ContinuousRange{Min: xr.Min, Max: xr.Max}
	ch.YAxis.Range = &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}
	ch.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    f.Title,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    1,
				DotColor:    colors[0],
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					return radii[index]
				},
				DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
					return colors[index]
				},
			},
		},
		chart.AnnotationSeries{Annotations: annotations},
	}
	return ch
}

// anchorSeries gives go-chart a visible series without drawing anything.
func anchorSeries(xr Range) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{xr.Min, xr.Max},
		YValues: []float64{0, 0},
		Style:   chart.Style{StrokeWidth: chart.Disabled},
	}
}

// edgeTicks pins the x range: go-chart derives the axis range from the tick
// extent whenever ticks are supplied.
func edgeTicks(xr Range, ticks []Tick) []chart.Tick {
	out := make([]chart.Tick, 0, len(ticks)+2)
	out = append(out, chart.Tick{Value: xr.Min})
	for _, t := range ticks {
		out = append(out, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return append(out, chart.Tick{Value: xr.Max})
}

func drawBars(bars []Bar, xr, yr Range) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, _ chart.Style) {
		toX := func(v float64) int {
			return box.Left + int(math.Round((v-xr.Min)/(xr.Max-xr.Min)*float64(box.Width())))
		}
		toY := func(v float64) int {
			return box.Bottom - int(math.Round((v-yr.Min)/(yr.Max-yr.Min)*float64(box.Height())))
		}
		base := math.Max(yr.Min, math.Min(0, yr.Max))

		for _, b := range bars {
			fill := colormap.ParseHex(b.Color)
			left, right := toX(b.X-b.Width/2), toX(b.X+b.Width/2)
			top := toY(math.Min(math.Max(b.Height, base), yr.Max))
			bottom := toY(math.Max(math.Min(b.Height, base), yr.Min))

			r.SetFillColor(fill)
			r.SetStrokeColor(fill)
			r.SetStrokeWidth(1)
			r.MoveTo(left, top)
			r.LineTo(right, top)
			r.LineTo(right, bottom)
			r.LineTo(left, bottom)
			r.Close()
			r.FillStroke()
		}
	}
}

// barXRange covers every bar edge and every tick.
func barXRange(bars []Bar, ticks []Tick) Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bars {
		lo = math.Min(lo, b.X-b.Width/2)
		hi = math.Max(hi, b.X+b.Width/2)
	}
	for _, t := range ticks {
		lo = math.Min(lo, t.Value)
		hi = math.Max(hi, t.Value)
	}
	pad := (hi - lo) * axisMargin
	return Range{Min: lo - pad, Max: hi + pad}
}

func barYRange(f Figure) Range {
	lo, hi := 0.0, 0.0
	for _, b := range f.Bars {
		lo = math.Min(lo, b.Height)
		hi = math.Max(hi, b.Height)
	}
	if f.YRange != nil {
		return widen(*f.YRange, lo, hi)
	}
	if hi == lo {
		return Range{Min: lo, Max: lo + 1}
	}
	pad := (hi - lo) * axisMargin
	if lo < 0 {
		lo -= pad
	}
	return Range{Min: lo, Max: hi + pad}
}

// widen extends r to cover [lo, hi], padding only the sides data overflows.
func widen(r Range, lo, hi float64) Range {
	pad := (math.Max(hi, r.Max) - math.Min(lo, r.Min)) * axisMargin
	if lo < r.Min {
		r.Min = lo - pad
	}
	if hi > r.Max {
		r.Max = hi + pad
	}
	return r
}

// fitRange spans values with a margin on both sides.
func fitRange(values []float64) Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		pad := math.Max(math.Abs(lo)*0.1, 0.5)
		return Range{Min: lo - pad, Max: hi + pad}
	}
	pad := (hi - lo) * axisMargin * 2
	return Range{Min: lo - pad, Max: hi + pad}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
