// Package preview serves the current article over HTTP for local review.
//
// Routes:
//
//	GET  /          rendered HTML page
//	GET  /markdown  raw Markdown
//	GET  /download  Markdown as an attachment named <slug>.md
//	GET  /keywords  analysed keyword records (JSON)
//	GET  /audit     SEO audit report (JSON)
//	POST /reset     regenerate from the input source
//	GET  /health    liveness
//	GET  /metrics   Prometheus metrics, when a metrics handler is configured
//
// With a watched input file the article is regenerated whenever the file
// is written.
package preview
