package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emiliopalmerini/aidash/internal/adapters/otel"
	"github.com/emiliopalmerini/aidash/internal/adapters/prometheus"
	"github.com/emiliopalmerini/aidash/internal/adapters/storage"
	"github.com/emiliopalmerini/aidash/internal/dashboard"
)

const (
	testResponses = `,word_count,readability,vocabulary_richness,sentiment,sentence_count
gpt4_response,10,55.2,0.61,0.82,7
claude_response,20,61.0,0.66,0.74,6
gemini_response,30,48.7,0.58,0.69,9
`
	testCapabilities = `metric,GPT-4,Claude,Gemini
reasoning,9,8.5,8
coding,8.5,9,7.5
`
)

type testEnv struct {
	dir     string
	metrics *prometheus.Manager
	handler http.Handler
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	metrics := prometheus.NewManager()
	loader := dashboard.NewLoader(
		storage.NewTableFile(dashboard.TableResponses, filepath.Join(dir, "ai_analysis_results.csv"), ','),
		storage.NewTableFile(dashboard.TableCapabilities, filepath.Join(dir, "ai_capabilities_assessment.csv"), ','),
		metrics, "project3_complete.py",
	)
	s := NewServer(":0", loader, metrics, otel.NewNoOpExporter(), metrics.Handler())
	return &testEnv{dir: dir, metrics: metrics, handler: s.Handler()}
}

func validFiles() map[string]string {
	return map[string]string{
		"ai_analysis_results.csv":        testResponses,
		"ai_capabilities_assessment.csv": testCapabilities,
	}
}

func (e *testEnv) get(t *testing.T, path string, htmx bool) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "view")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	res := rec.Result()
	body, _ := io.ReadAll(res.Body)
	return res, string(body)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	res, body := env.get(t, "/health", false)
	if res.StatusCode != http.StatusOK || body != "ok" {
		t.Errorf("expected 200 ok, got %d %q", res.StatusCode, body)
	}
}

func TestIndex_FullPage(t *testing.T) {
	env := newTestEnv(t, validFiles())
	res, body := env.get(t, "/", false)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.StatusCode, body)
	}
	for _, want := range []string{
		"<!doctype html>",
		"Modern AI System Analysis Dashboard",
		"Response Metrics Table",
		"AI Capability Comparison",
		"Visualizations",
		"Note: Run project3_complete.py first",
		"gpt4_response",
		`id="view-responses"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
	if got := strings.Count(body, `<tr><th scope="row">`); got != 3 {
		t.Errorf("expected 3 response rows, got %d", got)
	}
}

func TestIndex_HTMXGetsFragment(t *testing.T) {
	env := newTestEnv(t, validFiles())
	res, body := env.get(t, "/?tab=capabilities", true)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if strings.Contains(body, "<html") {
		t.Error("expected fragment for htmx request")
	}
	if !strings.Contains(body, `id="view-capabilities"`) {
		t.Error("expected capabilities view")
	}
	if got := strings.Count(body, `<tr><th scope="row">`); got != 2 {
		t.Errorf("expected 2 capability rows, got %d", got)
	}
}

func TestIndex_HTMXOtherTargetGetsPage(t *testing.T) {
	env := newTestEnv(t, validFiles())
	req := httptest.NewRequest(http.MethodGet, "/?tab=capabilities", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "body")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Error("expected the full page when htmx targets another element")
	}
}

func TestView_Charts(t *testing.T) {
	env := newTestEnv(t, validFiles())
	res, body := env.get(t, "/views/charts", true)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.StatusCode, body)
	}
	if got := strings.Count(body, `<figure class="chart"`); got != 7 {
		t.Errorf("expected 7 charts, got %d", got)
	}
	if got := strings.Count(body, "<svg"); got != 7 {
		t.Errorf("expected 7 svg documents, got %d", got)
	}
	if !strings.Contains(body, `<ul class="legend">`) {
		t.Error("expected the grouped chart legend")
	}

	_, metrics := env.get(t, "/metrics", false)
	if !strings.Contains(metrics, `aidash_dashboard_charts_rendered_total{chart="capabilities"} 1`) {
		t.Error("expected chart counter")
	}
}

func TestView_Unknown(t *testing.T) {
	env := newTestEnv(t, validFiles())
	res, _ := env.get(t, "/views/settings", true)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", res.StatusCode)
	}
}

func TestIndex_MissingFile(t *testing.T) {
	files := validFiles()
	delete(files, "ai_analysis_results.csv")
	env := newTestEnv(t, files)

	res, body := env.get(t, "/", false)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "ai_analysis_results.csv") || !strings.Contains(body, "Run project3_complete.py first") {
		t.Errorf("expected artifact-naming message, got %s", body)
	}
	if strings.Contains(body, `class="view"`) {
		t.Error("expected no view to render")
	}

	res, _ = env.get(t, "/views/charts", true)
	if res.Header.Get("HX-Refresh") != "true" {
		t.Error("expected htmx refresh on failure")
	}

	_, metrics := env.get(t, "/metrics", false)
	if !strings.Contains(metrics, `aidash_dashboard_table_loads_total{outcome="load_error",table="responses"}`) {
		t.Error("expected load_error counter")
	}
	if !strings.Contains(metrics, `aidash_dashboard_http_requests_total{code="500",route="/"} 1`) {
		t.Error("expected 500 request counter")
	}
}

func TestIndex_SchemaError(t *testing.T) {
	files := validFiles()
	files["ai_analysis_results.csv"] = ",word_count,readability\ngpt,10,55\n"
	env := newTestEnv(t, files)

	res, body := env.get(t, "/", false)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "vocabulary_richness") {
		t.Errorf("expected missing column in message, got %s", body)
	}
}

func TestIndex_EmptyTables(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		"ai_analysis_results.csv":        ",word_count,readability,vocabulary_richness,sentiment,sentence_count\n",
		"ai_capabilities_assessment.csv": "metric,GPT-4\n",
	})

	res, body := env.get(t, "/?tab=charts", false)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.StatusCode, body)
	}
	if got := strings.Count(body, "No data to plot."); got != 7 {
		t.Errorf("expected 7 empty charts, got %d", got)
	}
	if !strings.Contains(body, "table responses has no rows") {
		t.Error("expected empty data warning")
	}
}

func TestStatic(t *testing.T) {
	env := newTestEnv(t, nil)
	res, body := env.get(t, "/static/style.css", false)
	if res.StatusCode != http.StatusOK || !strings.Contains(body, ".grid") {
		t.Errorf("expected stylesheet, got %d", res.StatusCode)
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, validFiles())
	res, _ := env.get(t, "/sessions", false)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", res.StatusCode)
	}
}
