package charts

import (
	"math"

	"github.com/emiliopalmerini/aidash/internal/colormap"
	"github.com/emiliopalmerini/aidash/internal/domain"
)

const (
	barWidth = 0.8

	// BubbleScale multiplies word_count into bubble area.
	BubbleScale = 4.0
	bubbleAlpha = 0.7

	// GroupBarWidth is the width of one bar inside a capability group.
	GroupBarWidth = 0.18
)

// CapabilityPalette colours the capability dimensions, cycling by column index.
var CapabilityPalette = []string{"#4e79a7", "#f28e2c", "#e15759", "#76b7b2"}

// BarSpec describes one single-series bar chart over a response column.
type BarSpec struct {
	ID     string
	Column string
	Title  string
	YLabel string
	Color  string
	YRange *Range
}

// Response bar charts in battery order. The bubble chart sits between
// sentiment and sentence_count.
var (
	WordCountBars = BarSpec{
		ID: "word-count", Column: domain.ColWordCount,
		Title: "Word Count Comparison", YLabel: "Number of Words",
		Color: "#00bfff", // deepskyblue
	}
	ReadabilityBars = BarSpec{
		ID: "readability", Column: domain.ColReadability,
		Title: "Readability Comparison", YLabel: "Flesch Score",
		Color: "#ff7f50", // coral
	}
	VocabularyBars = BarSpec{
		ID: "vocabulary-richness", Column: domain.ColVocabularyRichness,
		Title: "Vocabulary Richness", YLabel: "Unique Words / Total Words",
		Color: "#3cb371", // mediumseagreen
	}
	SentimentBars = BarSpec{
		ID: "sentiment", Column: domain.ColSentiment,
		Title: "Sentiment Score", YLabel: "Polarity (0: Negative, 1: Positive)",
		Color:  "#da70d6", // orchid
		YRange: &Range{Min: 0, Max: 1},
	}
	SentenceBars = BarSpec{
		ID: "sentence-count", Column: domain.ColSentenceCount,
		Title: "Number of Sentences per Response", YLabel: "Sentence Count",
		Color: "#6a5acd", // slateblue
	}
)

// Battery builds all seven charts in their fixed order.
func Battery(resp *domain.ResponseMetrics, caps *domain.CapabilityAssessment) []Figure {
	return []Figure{
		BarFigure(WordCountBars, resp),
		BarFigure(ReadabilityBars, resp),
		BarFigure(VocabularyBars, resp),
		BarFigure(SentimentBars, resp),
		BubbleFigure(resp),
		BarFigure(SentenceBars, resp),
		GroupedBarFigure(caps),
	}
}

// BarFigure draws one bar per response row, in row order.
func BarFigure(spec BarSpec, resp *domain.ResponseMetrics) Figure {
	values := resp.Column(spec.Column)
	f := Figure{
		ID:     spec.ID,
		Kind:   KindBar,
		Title:  spec.Title,
		YLabel: spec.YLabel,
		YRange: spec.YRange,
		Bars:   make([]Bar, 0, len(values)),
		Ticks:  make([]Tick, 0, len(values)),
	}
	for i, v := range values {
		x := float64(i)
		f.Bars = append(f.Bars, Bar{
			Label:  resp.Labels[i],
			X:      x,
			Width:  barWidth,
			Height: v,
			Color:  spec.Color,
		})
		f.Ticks = append(f.Ticks, Tick{Value: x, Label: resp.Labels[i]})
	}
	return f
}

// BubbleRadius converts a bubble area into a circle radius.
func BubbleRadius(area float64) float64 {
	if area <= 0 {
		return 0
	}
	return math.Sqrt(area / math.Pi)
}

// BubbleFigure plots vocabulary richness against readability, one labelled
// bubble per response with area proportional to word_count.
func BubbleFigure(resp *domain.ResponseMetrics) Figure {
	f := Figure{
		ID:     "vocabulary-vs-readability",
		Kind:   KindBubble,
		Title:  "Vocabulary vs Readability (Bubble Size = Word Count)",
		XLabel: "Vocabulary Richness",
		YLabel: "Readability Score",
		Alpha:  bubbleAlpha,
		Points: make([]Point, 0, len(resp.Labels)),
	}

	areas := make([]float64, len(resp.WordCount))
	for i, wc := range resp.WordCount {
		areas[i] = wc * BubbleScale
	}
	grad := colormap.NewGradient(colormap.Cool, areas)

	for i, label := range resp.Labels {
		f.Points = append(f.Points, Point{
			Label: label,
			X:     resp.VocabularyRichness[i],
			Y:     resp.Readability[i],
			Area:  areas[i],
			Color: colormap.Hex(grad.Color(areas[i])),
		})
	}
	return f
}

// GroupedBarFigure draws, for every capability metric, one bar per evaluated
// dimension offset by GroupBarWidth times the dimension index.
func GroupedBarFigure(caps *domain.CapabilityAssessment) Figure {
	f := Figure{
		ID:     "capabilities",
		Kind:   KindGroupedBar,
		Title:  "AI Capabilities Grouped Comparison",
		XLabel: "Metrics",
		YLabel: "Score (out of 10)",
		Bars:   make([]Bar, 0, len(caps.Metrics)*len(caps.Dimensions)),
		Ticks:  make([]Tick, 0, len(caps.Metrics)),
		Legend: make([]LegendEntry, 0, len(caps.Dimensions)),
	}

	for c, dim := range caps.Dimensions {
		color := CapabilityPalette[c%len(CapabilityPalette)]
		f.Legend = append(f.Legend, LegendEntry{Name: dim, Color: color})
		for r, metric := range caps.Metrics {
			f.Bars = append(f.Bars, Bar{
				Label:  metric,
				Series: c,
				X:      float64(r) + float64(c)*GroupBarWidth,
				Width:  GroupBarWidth,
				Height: caps.Scores[r][c],
				Color:  color,
			})
		}
	}

	for r, metric := range caps.Metrics {
		f.Ticks = append(f.Ticks, Tick{Value: float64(r) + 1.5*GroupBarWidth, Label: metric})
	}
	return f
}
