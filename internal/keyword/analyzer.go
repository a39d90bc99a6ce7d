package keyword

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"git.home.luguber.info/inful/seostudio/internal/logfields"
	"git.home.luguber.info/inful/seostudio/internal/metrics"
)

// Source yields pseudo-random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Analyzer turns raw keyword strings into scored records.
type Analyzer struct {
	source   Source
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSource pins the random source used for unknown keywords.
func WithSource(src Source) Option {
	return func(a *Analyzer) {
		if src != nil {
			a.source = src
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(a *Analyzer) {
		if rec != nil {
			a.recorder = rec
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates an Analyzer. Without WithSource, unknown keywords get
// non-deterministic metrics.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		source:   globalSource{},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores every non-blank keyword and returns the records ordered by
// descending score. Equal scores keep their input order. Duplicates are kept.
func (a *Analyzer) Analyze(keywords []string) []Record {
	records := make([]Record, 0, len(keywords))
	for _, raw := range keywords {
		k := strings.TrimSpace(raw)
		if k == "" {
			continue
		}
		records = append(records, a.Score(k))
	}

	slices.SortStableFunc(records, func(x, y Record) int {
		return y.Score - x.Score
	})
	a.logger.Debug("Keywords analyzed", logfields.Count(len(records)))
	return records
}

// Score builds the record for a single keyword.
func (a *Analyzer) Score(k string) Record {
	m, known := knownMetrics[k]
	if !known {
		m = stats{
			volume:     a.source.IntN(syntheticVolumeSpan) + syntheticVolumeMin,
			difficulty: a.source.IntN(syntheticDifficultySpan) + syntheticDifficultyMin,
		}
	}
	a.recorder.IncKeywordAnalyzed(known)

	return Record{
		Keyword:    k,
		Volume:     m.volume,
		Difficulty: m.difficulty,
		Intent:     ClassifyIntent(k),
		Score:      RankingScore(m.volume, m.difficulty),
		Variations: Variations(k),
	}
}

// ClassifyIntent applies the substring rules in priority order. Matching is
// case-sensitive; anything unmatched is commercial.
func ClassifyIntent(k string) Intent {
	switch {
	case strings.Contains(k, "premium") || strings.Contains(k, "luxo"):
		return IntentCommercial
	case strings.Contains(k, "como") || strings.Contains(k, "o que"):
		return IntentInformational
	case strings.Contains(k, "comprar") || strings.Contains(k, "preço"):
		return IntentTransactional
	default:
		return IntentCommercial
	}
}

// Variations returns the semantic variations of k, synthesizing three when
// the keyword is not in the table. The returned slice is a fresh copy.
func Variations(k string) []string {
	if known, ok := knownVariations[k]; ok {
		return slices.Clone(known)
	}
	out := make([]string, 0, len(variationSuffixes))
	for _, suffix := range variationSuffixes {
		out = append(out, k+" "+suffix)
	}
	return out
}

// ParseInput splits free text into one keyword per line, trimming each and
// dropping blanks. Blank text yields a copy of DefaultKeywords.
func ParseInput(text string) []string {
	if strings.TrimSpace(text) == "" {
		return slices.Clone(DefaultKeywords)
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if k := strings.TrimSpace(line); k != "" {
			out = append(out, k)
		}
	}
	return out
}
