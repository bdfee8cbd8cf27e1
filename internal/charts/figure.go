// Package charts builds the fixed battery of dashboard charts. Builders are
// pure functions from the loaded tables to a Figure; rendering to SVG is a
// separate step.
package charts

type Kind string

const (
	KindBar        Kind = "bar"
	KindBubble     Kind = "bubble"
	KindGroupedBar Kind = "grouped_bar"
)

// Bar is one rectangle centred on X in data units.
type Bar struct {
	Label  string
	Series int
	X      float64
	Width  float64
	Height float64
	Color  string
}

// Point is one bubble. Area is in square pixels.
type Point struct {
	Label string
	X, Y  float64
	Area  float64
	Color string
}

// Tick labels a position on the x axis.
type Tick struct {
	Value float64
	Label string
}

type LegendEntry struct {
	Name  string
	Color string
}

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Figure is a render-independent description of one chart.
type Figure struct {
	ID     string
	Kind   Kind
	Title  string
	XLabel string
	YLabel string

	Bars   []Bar
	Points []Point
	Ticks  []Tick
	Legend []LegendEntry

	// YRange is the least y span shown; values outside it widen the axis.
	// nil lets the renderer fit the data.
	YRange *Range
	// Alpha applies to bubbles, in [0,1].
	Alpha float64

	Width, Height int
}

// Empty reports whether the figure has nothing to draw.
func (f Figure) Empty() bool {
	return len(f.Bars) == 0 && len(f.Points) == 0
}

// Heights returns bar heights in draw order.
func (f Figure) Heights() []float64 {
	out := make([]float64, len(f.Bars))
	for i, b := range f.Bars {
		out[i] = b.Height
	}
	return out
}
