package ports

import "time"

// DashboardMetrics records process-wide counters for the /metrics endpoint.
// Implementations must be safe for concurrent use.
type DashboardMetrics interface {
	// TableLoaded counts one table read with outcome "ok", "empty",
	// "load_error" or "schema_error".
	TableLoaded(table, outcome string)
	// LoadDuration observes how long a full load pass took.
	LoadDuration(d time.Duration)
	// ChartRendered counts one chart written to a page.
	ChartRendered(chart string)
	// HTTPRequest counts one served request.
	HTTPRequest(route string, code int)
}
