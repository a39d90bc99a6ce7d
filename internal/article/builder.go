package article

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/keyword"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
	"git.home.luguber.info/inful/seostudio/internal/metrics"
	"git.home.luguber.info/inful/seostudio/internal/slug"
)

// DefaultBrand is the brand woven into the templates when none is configured.
const DefaultBrand = "Viora"

// Picker chooses a template index in [0, n). keyword.Source values satisfy it.
type Picker interface {
	IntN(n int) int
}

// Fixed is a Picker that always selects the same index, wrapped into range.
type Fixed int

func (f Fixed) IntN(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

type randomPicker struct{}

func (randomPicker) IntN(n int) int { return rand.IntN(n) }

// Builder assembles Documents. The zero value is not usable; call NewBuilder.
type Builder struct {
	brand    string
	picker   Picker
	observer Observer
	pace     time.Duration
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithBrand sets the brand name used in the templates.
func WithBrand(brand string) Option {
	return func(b *Builder) {
		if s := strings.TrimSpace(brand); s != "" {
			b.brand = s
		}
	}
}

// WithPicker pins title and introduction selection.
func WithPicker(p Picker) Option {
	return func(b *Builder) {
		if p != nil {
			b.picker = p
		}
	}
}

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option {
	return func(b *Builder) {
		if o != nil {
			b.observer = o
		}
	}
}

// WithPace inserts a fixed wait before each stage completes. Zero disables it.
func WithPace(d time.Duration) Option {
	return func(b *Builder) {
		if d > 0 {
			b.pace = d
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(b *Builder) {
		if rec != nil {
			b.recorder = rec
		}
	}
}

// WithLogger sets the builder's logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a Builder with random template selection and no pacing.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		brand:    DefaultBrand,
		picker:   randomPicker{},
		observer: NoopObserver{},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates the article for rec. Only rec.Keyword and rec.Variations
// are used. It fails on a blank keyword or when ctx ends during pacing.
func (b *Builder) Build(ctx context.Context, rec keyword.Record) (*Document, error) {
	kw := strings.TrimSpace(rec.Keyword)
	if kw == "" {
		return nil, errors.ValidationError("keyword is blank").Build()
	}

	data := newTemplateData(kw, b.brand)
	doc := &Document{
		Keyword:    kw,
		Variations: slices.Clone(rec.Variations),
	}
	_, faqFromTable := knownFAQ[kw]

	steps := map[Stage]func() error{
		StageCollectQuestions: func() (err error) {
			doc.FAQ, err = questionsFor(kw, data)
			return err
		},
		StageSEOElements: func() (err error) {
			if doc.Title, err = execute(titleTemplates[b.picker.IntN(len(titleTemplates))], data); err != nil {
				return err
			}
			doc.Slug = slug.Make(doc.Title)
			doc.MetaDescription, err = execute(metaTemplate, data)
			return err
		},
		StageIntroduction: func() (err error) {
			doc.Introduction, err = execute(introTemplates[b.picker.IntN(len(introTemplates))], data)
			return err
		},
		StageBody: func() (err error) {
			doc.Sections, err = sectionsFor(data)
			return err
		},
		StageClosing: func() (err error) {
			doc.Conclusion, err = execute(conclusionTemplate, data)
			return err
		},
	}

	for i, stage := range Stages {
		if err := b.runStage(ctx, stage, i, steps[stage]); err != nil {
			return nil, err
		}
	}

	b.recorder.IncArticleGenerated(faqFromTable)
	b.logger.Info("Article generated",
		logfields.Keyword(kw),
		logfields.Slug(doc.Slug),
		slog.Bool("faq_from_table", faqFromTable))
	return doc, nil
}

func (b *Builder) runStage(ctx context.Context, stage Stage, index int, fn func() error) error {
	start := time.Now()
	b.observer.OnStageStart(stage, index, len(Stages))
	b.logger.Debug("Stage started", logfields.Stage(string(stage)))

	if b.pace > 0 {
		timer := time.NewTimer(b.pace)
		select {
		case <-ctx.Done():
			timer.Stop()
			b.recorder.IncStageResult(string(stage), metrics.ResultCanceled)
			return errors.CanceledError("article generation canceled").
				WithCause(ctx.Err()).
				WithContext("stage", string(stage)).
				Build()
		case <-timer.C:
		}
	}

	if err := fn(); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "template execution failed").
			Fatal().
			WithContext("stage", string(stage)).
			Build()
	}

	d := time.Since(start)
	b.recorder.ObserveStageDuration(string(stage), d)
	b.recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	b.observer.OnStageComplete(stage, d)
	b.logger.Debug("Stage complete", logfields.Stage(string(stage)), logfields.Duration(d))
	return nil
}

func questionsFor(kw string, data templateData) ([]QuestionAnswer, error) {
	tpls, ok := knownFAQ[kw]
	if !ok {
		tpls = fallbackFAQ
	}
	out := make([]QuestionAnswer, 0, len(tpls))
	for _, t := range tpls {
		q, err := execute(t.question, data)
		if err != nil {
			return nil, err
		}
		a, err := execute(t.answer, data)
		if err != nil {
			return nil, err
		}
		out = append(out, QuestionAnswer{Question: q, Answer: a})
	}
	return out, nil
}

func sectionsFor(data templateData) ([]Section, error) {
	out := make([]Section, 0, len(sectionTemplates))
	for _, t := range sectionTemplates {
		heading, err := execute(t.heading, data)
		if err != nil {
			return nil, err
		}
		body, err := execute(t.body, data)
		if err != nil {
			return nil, err
		}
		out = append(out, Section{Heading: heading, Subheading: t.subheading, Body: body})
	}
	return out, nil
}
