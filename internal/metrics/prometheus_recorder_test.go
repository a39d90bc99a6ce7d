package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_CountsByLabel(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncKeywordAnalyzed(true)
	pr.IncKeywordAnalyzed(true)
	pr.IncKeywordAnalyzed(false)
	pr.ObserveStageDuration("body", 150*time.Millisecond)
	pr.IncStageResult("body", ResultSuccess)
	pr.IncArticleGenerated(false)
	pr.IncAuditFinding("warning")
	pr.IncExport(true)

	require.InDelta(t, 2, counterValue(t, reg, "seostudio_keywords_analyzed_total", "table"), 0)
	require.InDelta(t, 1, counterValue(t, reg, "seostudio_keywords_analyzed_total", "synthesized"), 0)
	require.InDelta(t, 1, counterValue(t, reg, "seostudio_articles_generated_total", "fallback"), 0)
	require.InDelta(t, 1, counterValue(t, reg, "seostudio_exports_total", "success"), 0)
}

// counterValue finds the counter sample of family name whose first label equals label.
func counterValue(t *testing.T, reg *prom.Registry, name, label string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if len(m.GetLabel()) > 0 && m.GetLabel()[0].GetValue() == label {
				return m.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, label)
	return 0
}

func TestPrometheusRecorder_NilReceiverIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncKeywordAnalyzed(true)
	pr.ObserveStageDuration("body", time.Second)
	pr.IncExport(false)
}

func TestHTTPHandler_ServesRegisteredMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncArticleGenerated(true)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `seostudio_articles_generated_total{faq_source="table"} 1`)
}
