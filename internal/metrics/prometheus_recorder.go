package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "seostudio"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	keywords      *prom.CounterVec
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	articles      *prom.CounterVec
	findings      *prom.CounterVec
	exports       *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		keywords: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "keywords_analyzed_total",
			Help:      "Keywords scored, by whether they came from the fixed table",
		}, []string{"source"}),
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_stage_duration_seconds",
			Help:      "Duration of individual article generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generation_stage_results_total",
			Help:      "Generation stage results by outcome",
		}, []string{"stage", "result"}),
		articles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "articles_generated_total",
			Help:      "Articles generated, by FAQ source",
		}, []string{"faq_source"}),
		findings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "audit_findings_total",
			Help:      "SEO audit findings by severity",
		}, []string{"severity"}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Markdown exports by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.keywords, pr.stageDuration, pr.stageResults, pr.articles, pr.findings, pr.exports)
	return pr
}

func (p *PrometheusRecorder) IncKeywordAnalyzed(known bool) {
	if p == nil {
		return
	}
	p.keywords.WithLabelValues(pick(known, "table", "synthesized")).Inc()
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncArticleGenerated(faqFromTable bool) {
	if p == nil {
		return
	}
	p.articles.WithLabelValues(pick(faqFromTable, "table", "fallback")).Inc()
}

func (p *PrometheusRecorder) IncAuditFinding(severity string) {
	if p == nil {
		return
	}
	p.findings.WithLabelValues(severity).Inc()
}

func (p *PrometheusRecorder) IncExport(success bool) {
	if p == nil {
		return
	}
	p.exports.WithLabelValues(pick(success, "success", "failed")).Inc()
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
