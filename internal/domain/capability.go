package domain

// CapabilityAssessment is the typed view of the capability score table: one
// row per metric, one column per evaluated system.
type CapabilityAssessment struct {
	Table      *Table
	Metrics    []string
	Dimensions []string
	// Scores is indexed [metric][dimension].
	Scores [][]float64
}

// NewCapabilityAssessment requires every data column of t to be numeric.
func NewCapabilityAssessment(t *Table) (*CapabilityAssessment, error) {
	scores := make([][]float64, t.Len())
	for i := range scores {
		scores[i] = make([]float64, len(t.Columns))
	}

	for j, col := range t.Columns {
		values, err := t.Float(col)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			scores[i][j] = v
		}
	}

	return &CapabilityAssessment{
		Table:      t,
		Metrics:    t.Labels(),
		Dimensions: t.Columns,
		Scores:     scores,
	}, nil
}

// Series returns the scores of one dimension across all metrics.
func (c *CapabilityAssessment) Series(dim int) []float64 {
	out := make([]float64, len(c.Scores))
	for i, row := range c.Scores {
		out[i] = row[dim]
	}
	return out
}
