// Package colormap provides the sequential colour scales used to shade table
// cells and chart marks.
package colormap

import (
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colormap interpolates linearly between evenly spaced colour stops.
type Colormap struct {
	Name  string
	stops []drawing.Color
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func mustHex(hexes ...string) []drawing.Color {
	out := make([]drawing.Color, len(hexes))
	for i, h := range hexes {
		out[i] = ParseHex(h)
	}
	return out
}

// ColorBrewer sequential schemes (9 classes) and matplotlib's "cool".
var (
	YlGnBu = Colormap{Name: "YlGnBu", stops: mustHex(
		"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
		"#1d91c0", "#225ea8", "#253494", "#081d58",
	)}
	OrRd = Colormap{Name: "OrRd", stops: mustHex(
		"#fff7ec", "#fee8c8", "#fdd49e", "#fdbb84", "#fc8d59",
		"#ef6548", "#d7301f", "#b30000", "#7f0000",
	)}
	Cool = Colormap{Name: "cool", stops: mustHex("#00ffff", "#ff00ff")}
)

// At returns the colour at position t in [0,1]; t is clamped.
func (m Colormap) At(t float64) drawing.Color {
	if math.IsNaN(t) || t <= 0 {
		return m.stops[0]
	}
	if t >= 1 {
		return m.stops[len(m.stops)-1]
	}

	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := m.stops[i], m.stops[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Gradient maps values onto a colormap using a fixed [Min, Max] range.
type Gradient struct {
	Map      Colormap
	Min, Max float64
}

// NewGradient spans the range of values. An empty slice yields [0,0].
func NewGradient(m Colormap, values []float64) Gradient {
	g := Gradient{Map: m}
	for i, v := range values {
		if i == 0 || v < g.Min {
			g.Min = v
		}
		if i == 0 || v > g.Max {
			g.Max = v
		}
	}
	return g
}

// Norm returns v scaled to [0,1]. A zero-width range maps everything to 0.
func (g Gradient) Norm(v float64) float64 {
	if g.Max == g.Min {
		return 0
	}
	return (v - g.Min) / (g.Max - g.Min)
}

func (g Gradient) Color(v float64) drawing.Color {
	return g.Map.At(g.Norm(v))
}

// Hex formats c as #rrggbb.
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// darkThreshold is the relative luminance below which text turns light.
const darkThreshold = 0.408

// TextColor picks a readable foreground for background c.
func TextColor(c drawing.Color) string {
	if Luminance(c) < darkThreshold {
		return "#f1f1f1"
	}
	return "#000000"
}

// Luminance is the WCAG relative luminance of c.
func Luminance(c drawing.Color) float64 {
	channel := func(v uint8) float64 {
		x := float64(v) / 255
		if x <= 0.03928 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}
