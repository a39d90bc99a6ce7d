package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyKeyword    = "keyword"
	KeyStage      = "stage"
	KeySlug       = "slug"
	KeyScore      = "score"
	KeyCount      = "count"
	KeySession    = "session_id"
	KeyStep       = "step"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyMethod     = "method"
	KeyStatus     = "status"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Keyword(k string) slog.Attr      { return slog.String(KeyKeyword, k) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Score(s int) slog.Attr           { return slog.Int(KeyScore, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Session(id string) slog.Attr     { return slog.String(KeySession, id) }
func Step(n int) slog.Attr            { return slog.Int(KeyStep, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }

// Duration converts d to the canonical duration_ms field.
func Duration(d time.Duration) slog.Attr {
	return DurationMS(float64(d.Microseconds()) / 1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
