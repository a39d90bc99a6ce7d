// Package metrics provides the observability hooks for SEO Studio runs.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so no caller needs nil checks:
//
//	analyzer := keyword.NewAnalyzer(keyword.WithRecorder(rec))
//
// PrometheusRecorder registers its collectors on a caller-supplied registry;
// HTTPHandler exposes that registry for scraping from the preview server.
package metrics
