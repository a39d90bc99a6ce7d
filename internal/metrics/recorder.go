package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for analysis, generation and export.
type Recorder interface {
	IncKeywordAnalyzed(known bool)
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncArticleGenerated(faqFromTable bool)
	IncAuditFinding(severity string)
	IncExport(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncKeywordAnalyzed(bool)                    {}
func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncArticleGenerated(bool)                   {}
func (NoopRecorder) IncAuditFinding(string)                     {}
func (NoopRecorder) IncExport(bool)                             {}
