package prometheus

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/emiliopalmerini/aidash/internal/ports"
)

var (
	_ ports.DashboardMetrics = (*Manager)(nil)
	_ ports.DashboardMetrics = (*NoOpMetrics)(nil)
)

func scrape(m *Manager) string {
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestManager(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager()

		Convey("When recording a load pass", func() {
			m.TableLoaded("responses", "ok")
			m.TableLoaded("capabilities", "load_error")
			m.LoadDuration(15 * time.Millisecond)
			body := scrape(m)

			Convey("Then the counters are exposed with labels", func() {
				So(body, ShouldContainSubstring, `aidash_dashboard_table_loads_total{outcome="ok",table="responses"} 1`)
				So(body, ShouldContainSubstring, `aidash_dashboard_table_loads_total{outcome="load_error",table="capabilities"} 1`)
				So(body, ShouldContainSubstring, "aidash_dashboard_load_duration_seconds_count 1")
			})
		})

		Convey("When recording charts and requests", func() {
			m.ChartRendered("word-count")
			m.ChartRendered("word-count")
			m.HTTPRequest("/", 500)
			body := scrape(m)

			Convey("Then they are counted", func() {
				So(body, ShouldContainSubstring, `aidash_dashboard_charts_rendered_total{chart="word-count"} 2`)
				So(body, ShouldContainSubstring, `aidash_dashboard_http_requests_total{code="500",route="/"} 1`)
			})
		})

		Convey("Then the default Go collectors are not exported", func() {
			m.HTTPRequest("/health", 200)
			So(scrape(m), ShouldNotContainSubstring, "go_goroutines")
		})
	})

	Convey("Given custom options", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("ui"),
			WithHistogramBuckets([]float64{0.1, 1}),
			WithRegistry(reg),
		)
		m.ChartRendered("sentiment")

		Convey("Then metric names follow them", func() {
			So(m.Registry(), ShouldEqual, reg)
			So(scrape(m), ShouldContainSubstring, `test_ui_charts_rendered_total{chart="sentiment"} 1`)
		})
	})

	Convey("Given the no-op implementation", t, func() {
		n := NewNoOpMetrics()
		So(func() {
			n.TableLoaded("responses", "ok")
			n.LoadDuration(time.Second)
			n.ChartRendered("x")
			n.HTTPRequest("/", 200)
		}, ShouldNotPanic)
	})
}
