package prometheus

import "time"

// NoOpMetrics discards every observation. Used when metrics.enabled is false.
type NoOpMetrics struct{}

func NewNoOpMetrics() *NoOpMetrics {
	return &NoOpMetrics{}
}

func (NoOpMetrics) TableLoaded(string, string) {}
func (NoOpMetrics) LoadDuration(time.Duration) {}
func (NoOpMetrics) ChartRendered(string)       {}
func (NoOpMetrics) HTTPRequest(string, int)    {}
