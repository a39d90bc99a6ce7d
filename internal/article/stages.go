package article

import "time"

// Stage identifies one step of article generation. Stages run in the order
// of Stages and each fills part of the Document.
type Stage string

const (
	StageCollectQuestions Stage = "collect_questions"
	StageSEOElements      Stage = "seo_elements"
	StageIntroduction     Stage = "introduction"
	StageBody             Stage = "body"
	StageClosing          Stage = "closing_cta"
)

// Stages lists every stage in execution order.
var Stages = []Stage{
	StageCollectQuestions,
	StageSEOElements,
	StageIntroduction,
	StageBody,
	StageClosing,
}

var stageLabels = map[Stage]string{
	StageCollectQuestions: "Coletando perguntas relacionadas (PAA)",
	StageSEOElements:      "Criando elementos de SEO otimizados",
	StageIntroduction:     "Desenvolvendo introdução emocional",
	StageBody:             "Estruturando o corpo do artigo",
	StageClosing:          "Finalizando com CTA elegante",
}

// Label is the human readable progress text for s.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Observer receives progress callbacks while a Builder runs.
type Observer interface {
	OnStageStart(stage Stage, index, total int)
	OnStageComplete(stage Stage, duration time.Duration)
}

// NoopObserver ignores all callbacks.
type NoopObserver struct{}

func (NoopObserver) OnStageStart(Stage, int, int)         {}
func (NoopObserver) OnStageComplete(Stage, time.Duration) {}

// ObserverFunc adapts a start callback into an Observer.
type ObserverFunc func(stage Stage, index, total int)

func (f ObserverFunc) OnStageStart(stage Stage, index, total int) { f(stage, index, total) }
func (ObserverFunc) OnStageComplete(Stage, time.Duration)         {}
