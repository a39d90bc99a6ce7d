package logfields

import (
	"log/slog"
	"testing"
	"time"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Keyword", KeyKeyword, "anel de prata", Keyword("anel de prata")},
		{"Stage", KeyStage, "body", Stage("body")},
		{"Slug", KeySlug, "anel-de-prata", Slug("anel-de-prata")},
		{"Session", KeySession, "abc", Session("abc")},
		{"Path", KeyPath, "/tmp/x.md", Path("/tmp/x.md")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := Score(99); v.Key != KeyScore { t.Fatalf("Score key mismatch: %s", v.Key) }
	if v := Count(10); v.Key != KeyCount { t.Fatalf("Count key mismatch: %s", v.Key) }
	if v := Step(2); v.Key != KeyStep { t.Fatalf("Step key mismatch: %s", v.Key) }
	if v := Duration(1500 * time.Microsecond); v.Value.Float64() != 1.5 {
		t.Fatalf("Duration value mismatch: %v", v.Value)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError { t.Fatalf("Error key mismatch: %s", attr.Key) }
	if attr.Value.String() != "" { t.Fatalf("Expected empty error string, got %s", attr.Value.String()) }
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" { t.Fatalf("Expected 'err-test', got %s", attr.Value.String()) }
}

type errTest struct{}
func (e errTest) Error() string { return "err-test" }
