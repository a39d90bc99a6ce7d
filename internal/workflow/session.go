// Package workflow drives the three-step studio flow: analyse keywords,
// pick one, generate and preview the article.
package workflow

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/seostudio/internal/article"
	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/keyword"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
)

// Step is the position in the flow.
type Step int

const (
	StepAnalysis   Step = 1
	StepGeneration Step = 2
	StepPreview    Step = 3
)

func (s Step) String() string {
	switch s {
	case StepAnalysis:
		return "analysis"
	case StepGeneration:
		return "generation"
	case StepPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Session holds the state of one run through the flow. It is safe for
// concurrent use.
type Session struct {
	id       string
	analyzer *keyword.Analyzer
	builder  *article.Builder
	logger   *slog.Logger

	mu       sync.RWMutex
	step     Step
	epoch    uint64
	records  []keyword.Record
	selected *keyword.Record
	doc      *article.Document
}

// NewSession starts a session at StepAnalysis.
func NewSession(analyzer *keyword.Analyzer, builder *article.Builder, logger *slog.Logger) *Session {
	if analyzer == nil {
		analyzer = keyword.NewAnalyzer()
	}
	if builder == nil {
		builder = article.NewBuilder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		analyzer: analyzer,
		builder:  builder,
		logger:   logger.With(logfields.Session(id)),
		step:     StepAnalysis,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Step() Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// Records returns a copy of the analysed records in ranking order.
func (s *Session) Records() []keyword.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Selected returns the chosen record, if any.
func (s *Session) Selected() (keyword.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return keyword.Record{}, false
	}
	return *s.selected, true
}

// Document returns the generated article, or nil before StepPreview.
func (s *Session) Document() *article.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Analyze scores the keywords in input (one per line; blank input uses the
// default list). The session stays at StepAnalysis.
func (s *Session) Analyze(input string) ([]keyword.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepAnalysis {
		return nil, outOfOrder("analyze", s.step)
	}
	records := s.analyzer.Analyze(keyword.ParseInput(input))
	if len(records) == 0 {
		return nil, errors.ValidationError("no keywords to analyze").Build()
	}
	s.records = records
	s.selected = nil
	s.logger.Info("Keywords analyzed", logfields.Count(len(records)), logfields.Step(int(s.step)))
	return slices.Clone(records), nil
}

// Select picks records[i] and advances to StepGeneration. A different
// record may be picked again while still at StepGeneration; doing so
// discards any build still running for the previous pick.
func (s *Session) Select(i int) (keyword.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepPreview || len(s.records) == 0 {
		return keyword.Record{}, outOfOrder("select", s.step)
	}
	if i < 0 || i >= len(s.records) {
		return keyword.Record{}, errors.ValidationError("keyword index out of range").
			WithContext("index", i).
			WithContext("count", len(s.records)).
			Build()
	}
	rec := s.records[i]
	s.selected = &rec
	s.step = StepGeneration
	s.epoch++
	s.logger.Info("Keyword selected", logfields.Keyword(rec.Keyword), logfields.Score(rec.Score))
	return rec, nil
}

// Generate builds the article for the selected record and advances to
// StepPreview. The lock is not held while stages run, so readers are never
// blocked by a paced build. A Reset or Select during the build discards its
// result.
func (s *Session) Generate(ctx context.Context) (*article.Document, error) {
	s.mu.Lock()
	if s.step != StepGeneration || s.selected == nil {
		step := s.step
		s.mu.Unlock()
		return nil, outOfOrder("generate", step)
	}
	rec := *s.selected
	epoch := s.epoch
	s.mu.Unlock()

	doc, err := s.builder.Build(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch || s.step != StepGeneration {
		return nil, errors.CanceledError("session changed during generation").
			WithContext("keyword", rec.Keyword).
			Build()
	}
	s.doc = doc
	s.step = StepPreview
	s.logger.Info("Article ready", logfields.Keyword(rec.Keyword), logfields.Slug(doc.Slug))
	return doc, nil
}

// Reset returns to StepAnalysis and clears all state. The session ID is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepAnalysis
	s.epoch++
	s.records = nil
	s.selected = nil
	s.doc = nil
}

// Run walks all three steps for input, selecting records[index], and
// replaces the session state only when every step succeeds. On failure the
// previous records, selection and article stay in place.
func (s *Session) Run(ctx context.Context, input string, index int) (*article.Document, error) {
	// The analyzer's source is shared with Analyze, so it runs under the lock.
	s.mu.Lock()
	epoch := s.epoch
	records := s.analyzer.Analyze(keyword.ParseInput(input))
	s.mu.Unlock()

	if len(records) == 0 {
		return nil, errors.ValidationError("no keywords to analyze").Build()
	}
	if index < 0 || index >= len(records) {
		return nil, errors.ValidationError("keyword index out of range").
			WithContext("index", index).
			WithContext("count", len(records)).
			Build()
	}
	rec := records[index]

	doc, err := s.builder.Build(ctx, rec)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil, errors.CanceledError("session changed during generation").
			WithContext("keyword", rec.Keyword).
			Build()
	}
	s.epoch++
	s.records = records
	s.selected = &rec
	s.doc = doc
	s.step = StepPreview
	s.logger.Info("Article ready",
		logfields.Count(len(records)),
		logfields.Keyword(rec.Keyword),
		logfields.Slug(doc.Slug))
	return doc, nil
}

func outOfOrder(op string, step Step) error {
	return errors.ValidationError("operation not allowed at current step").
		WithContext("operation", op).
		WithContext("step", step.String()).
		Build()
}
