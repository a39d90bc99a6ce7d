package article

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/keyword"
	"git.home.luguber.info/inful/seostudio/internal/slug"
)

func record(k string) keyword.Record {
	return keyword.NewAnalyzer(keyword.WithSource(keyword.NewSeededSource(1))).Score(k)
}

func TestBuild_KnownKeyword_UsesCuratedFAQ(t *testing.T) {
	b := NewBuilder(WithPicker(Fixed(0)))

	doc, err := b.Build(context.Background(), record("aliança de prata 925"))
	require.NoError(t, err)

	require.Equal(t, "Aliança de prata 925: Elegância Atemporal em Cada Detalhe", doc.Title)
	require.Equal(t, "alianca-de-prata-925-elegancia-atemporal-em-cada-detalhe", doc.Slug)
	require.Len(t, doc.FAQ, 2)
	require.Equal(t, "Aliança de prata 925 é adequada para uso diário?", doc.FAQ[0].Question)
	require.Contains(t, doc.FAQ[0].Answer, "uma aliança Viora mantém")
	require.Equal(t, []string{"aliança prata maciça", "aliança prata verdadeira", "aliança prata certificada"}, doc.Variations)
}

func TestBuild_UnknownKeyword_SynthesizesThreeFAQ(t *testing.T) {
	doc, err := NewBuilder(WithPicker(Fixed(0))).Build(context.Background(), record("brincos de prata delicados"))
	require.NoError(t, err)

	require.Len(t, doc.FAQ, 3)
	require.Equal(t, "Por que escolher brincos de prata delicados da Viora?", doc.FAQ[0].Question)
	require.Equal(t, "Cada brincos de prata delicado é uma extensão de quem você é, permitindo expressar sua individualidade através de designs únicos e significativos.", doc.FAQ[1].Answer)
	require.Equal(t, "Qual o simbolismo das brincos de prata delicados?", doc.FAQ[2].Question)
}

func TestBuild_AlwaysFourSectionsInFixedOrder(t *testing.T) {
	for _, k := range append(slices.Clone(keyword.DefaultKeywords), "x", "anel") {
		doc, err := NewBuilder().Build(context.Background(), record(k))
		require.NoError(t, err, k)
		require.Len(t, doc.Sections, 4, k)
		require.NotEmpty(t, doc.FAQ, k)

		title := Capitalize(k)
		require.Equal(t, "A Arte de Escolher "+title+" Excepcionais", doc.Sections[0].Heading)
		require.Equal(t, "O Simbolismo Profundo das "+title, doc.Sections[1].Heading)
		require.Equal(t, "Cuidados Essenciais para suas "+title, doc.Sections[2].Heading)
		require.Equal(t, "Tendências e Estilos em "+title, doc.Sections[3].Heading)
		require.Equal(t, "Critérios de Qualidade Premium", doc.Sections[0].Subheading)
		for _, s := range doc.Sections {
			require.Len(t, strings.Split(s.Body, "\n\n"), 3)
		}
	}
}

func TestBuild_PickerSelectsTitleAndIntroduction(t *testing.T) {
	rec := record("colar de prata elegante")

	titles := map[string]bool{}
	intros := map[string]bool{}
	for i := 0; i < 3; i++ {
		doc, err := NewBuilder(WithPicker(Fixed(i))).Build(context.Background(), rec)
		require.NoError(t, err)
		titles[doc.Title] = true
		intros[doc.Introduction] = true
		require.Equal(t, slug.Make(doc.Title), doc.Slug)
	}
	require.Len(t, titles, 3)
	require.Len(t, intros, 2)

	doc, err := NewBuilder(WithPicker(Fixed(1))).Build(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, "Descubra Colar de prata elegante que Contam Sua História", doc.Title)
	require.True(t, strings.HasPrefix(doc.Introduction, "Existe uma magia particular"))
	require.Contains(t, doc.Introduction, "Cada colar de prata elegant em nossa coleção")
}

func TestBuild_SamePickerIsDeterministic(t *testing.T) {
	rec := record("joias de prata premium")
	a, err := NewBuilder(WithPicker(keyword.NewSeededSource(7))).Build(context.Background(), rec)
	require.NoError(t, err)
	b, err := NewBuilder(WithPicker(keyword.NewSeededSource(7))).Build(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuild_Brand_ReplacesDefault(t *testing.T) {
	doc, err := NewBuilder(WithBrand("Lumina"), WithPicker(Fixed(0))).Build(context.Background(), record("joias de prata premium"))
	require.NoError(t, err)

	require.Equal(t, "Explore joias de prata premium premium da Lumina. Peças únicas em prata 925 que combinam elegância, qualidade e significado. Descubra a coleção exclusiva.", doc.MetaDescription)
	require.NotContains(t, doc.Conclusion, "Viora")
	require.Contains(t, doc.FAQ[1].Answer, "A Lumina fornece certificado")
}

func TestBuild_BlankKeyword_ReturnsValidationError(t *testing.T) {
	_, err := NewBuilder().Build(context.Background(), keyword.Record{Keyword: "   "})
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

type recordingObserver struct {
	started   []Stage
	completed []Stage
}

func (r *recordingObserver) OnStageStart(s Stage, index, total int) {
	r.started = append(r.started, s)
}

func (r *recordingObserver) OnStageComplete(s Stage, _ time.Duration) {
	r.completed = append(r.completed, s)
}

func TestBuild_ObserverSeesAllStagesInOrder(t *testing.T) {
	obs := &recordingObserver{}
	_, err := NewBuilder(WithObserver(obs), WithPace(time.Millisecond)).Build(context.Background(), record("conjunto joias prata"))
	require.NoError(t, err)

	require.Equal(t, Stages, obs.started)
	require.Equal(t, Stages, obs.completed)
	require.Equal(t, "Finalizando com CTA elegante", StageClosing.Label())
}

func TestBuild_CanceledDuringPace_ReturnsCanceledError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var seen []Stage
	obs := ObserverFunc(func(s Stage, index, total int) {
		seen = append(seen, s)
		if index == 0 {
			cancel()
		}
	})

	_, err := NewBuilder(WithObserver(obs), WithPace(time.Hour)).Build(ctx, record("conjunto joias prata"))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryCanceled))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []Stage{StageCollectQuestions}, seen)
}

func TestSingularAndCapitalize(t *testing.T) {
	require.Equal(t, "joias de prat", Singular("joias de prata"))
	require.Equal(t, "pingente de prata únic", Singular("pingente de prata único"))
	require.Equal(t, "aliança de prata 92", Singular("aliança de prata 925"))
	require.Equal(t, "é", Singular("éé"))
	require.Equal(t, "", Singular(""))
	require.Equal(t, "Única", Capitalize("única"))
	require.Equal(t, "", Capitalize(""))
}

func TestFixed_WrapsIntoRange(t *testing.T) {
	require.Equal(t, 1, Fixed(4).IntN(3))
	require.Equal(t, 2, Fixed(-1).IntN(3))
}
