package templates

// Tab identifiers, also used as /views/{view} path values.
const (
	TabResponses    = "responses"
	TabCapabilities = "capabilities"
	TabCharts       = "charts"
)

type Tab struct {
	ID    string
	Label string
}

// Tabs lists the dashboard views in display order.
var Tabs = []Tab{
	{ID: TabResponses, Label: "Response Metrics Table"},
	{ID: TabCapabilities, Label: "AI Capability Comparison"},
	{ID: TabCharts, Label: "Visualizations"},
}

// PageData is everything one page render needs.
type PageData struct {
	Title  string
	Intro  string
	Active string // one of the Tab IDs
	Static bool   // render every view on one page, no tab navigation
	// Stylesheet is inlined instead of linking /static/style.css when set.
	Stylesheet string
	Generator  string
	SessionID  string
	LoadedAt   string
	Warnings   []string

	Responses    Grid
	Capabilities Grid
	Charts       []ChartPanel
}

// Grid is a colour-graded table.
type Grid struct {
	ID        string
	Title     string
	IndexName string
	Columns   []string
	Rows      []GridRow
}

type GridRow struct {
	Label string
	Cells []Cell
}

// Cell is one grid value. Background and Color are empty for non-numeric
// cells.
type Cell struct {
	Text       string
	Background string
	Color      string
}

// ChartPanel holds one rendered chart. SVG is nil for an empty chart.
type ChartPanel struct {
	ID     string
	Title  string
	SVG    []byte
	Legend []LegendEntry
}

type LegendEntry struct {
	Name  string
	Color string
}

// ErrorData describes a failed render pass.
type ErrorData struct {
	Title     string
	Message   string
	Generator string
}
