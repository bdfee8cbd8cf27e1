package domain

// Response metric columns read by the chart battery.
const (
	ColWordCount          = "word_count"
	ColReadability        = "readability"
	ColVocabularyRichness = "vocabulary_richness"
	ColSentiment          = "sentiment"
	ColSentenceCount      = "sentence_count"
)

// ResponseColumns lists the columns a response table must carry.
var ResponseColumns = []string{
	ColWordCount,
	ColReadability,
	ColVocabularyRichness,
	ColSentiment,
	ColSentenceCount,
}

// ResponseMetrics is the typed view of the per-response statistics table.
// Every slice is aligned with Labels.
type ResponseMetrics struct {
	Table              *Table
	Labels             []string
	WordCount          []float64
	Readability        []float64
	VocabularyRichness []float64
	Sentiment          []float64
	SentenceCount      []float64
}

// NewResponseMetrics extracts the plotted columns from t.
func NewResponseMetrics(t *Table) (*ResponseMetrics, error) {
	cols := make(map[string][]float64, len(ResponseColumns))
	for _, c := range ResponseColumns {
		values, err := t.Float(c)
		if err != nil {
			return nil, err
		}
		cols[c] = values
	}

	return &ResponseMetrics{
		Table:              t,
		Labels:             t.Labels(),
		WordCount:          cols[ColWordCount],
		Readability:        cols[ColReadability],
		VocabularyRichness: cols[ColVocabularyRichness],
		Sentiment:          cols[ColSentiment],
		SentenceCount:      cols[ColSentenceCount],
	}, nil
}

// Column returns the values of one of ResponseColumns.
func (m *ResponseMetrics) Column(name string) []float64 {
	switch name {
	case ColWordCount:
		return m.WordCount
	case ColReadability:
		return m.Readability
	case ColVocabularyRichness:
		return m.VocabularyRichness
	case ColSentiment:
		return m.Sentiment
	case ColSentenceCount:
		return m.SentenceCount
	default:
		return nil
	}
}
