package article

import (
	"bytes"
	"text/template"
)

// templateData is what every prose template can reference.
type templateData struct {
	Keyword  string
	Cap      string
	Singular string
	Brand    string
}

func newTemplateData(keyword, brand string) templateData {
	return templateData{
		Keyword:  keyword,
		Cap:      Capitalize(keyword),
		Singular: Singular(keyword),
		Brand:    brand,
	}
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}

func mustParseAll(name string, texts ...string) []*template.Template {
	out := make([]*template.Template, len(texts))
	for i, t := range texts {
		out[i] = mustParse(name, t)
	}
	return out
}

func execute(tpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var titleTemplates = mustParseAll("title",
	`{{.Cap}}: Elegância Atemporal em Cada Detalhe`,
	`Descubra {{.Cap}} que Contam Sua História`,
	`{{.Cap}}: Onde Tradição Encontra Modernidade`,
)

var metaTemplate = mustParse("meta",
	`Explore {{.Keyword}} premium da {{.Brand}}. Peças únicas em prata 925 que combinam elegância, qualidade e significado. Descubra a coleção exclusiva.`)

var introTemplates = mustParseAll("introduction",
	`No universo das joias, existe uma linguagem silenciosa que transcende palavras. Cada {{.Singular}} carrega consigo não apenas a beleza do metal precioso, mas também a essência de quem a escolhe. Na {{.Brand}}, compreendemos que uma joia é muito mais que um acessório – é uma extensão da sua personalidade, um reflexo da sua história única.

Quando você escolhe {{.Keyword}} da nossa coleção, está investindo em peças que foram criadas com paixão e dedicação artesanal. Cada detalhe é pensado para mulheres que valorizam a autenticidade e buscam expressar sua individualidade através da elegância atemporal.

Nossa filosofia vai além da simples criação de joias. Acreditamos que cada peça deve contar uma história, despertar emoções e criar conexões profundas com quem a usa. É essa visão que nos move a criar {{.Keyword}} verdadeiramente especiais.`,
	`Existe uma magia particular no momento em que uma mulher encontra a joia perfeita. É um instante de reconhecimento mútuo, onde a peça parece sussurrar: "eu pertenço a você". Na {{.Brand}}, dedicamos nossa expertise à criação de {{.Keyword}} que despertam exatamente essa sensação.

Cada {{.Singular}} em nossa coleção nasce de uma combinação única entre tradição artesanal e visão contemporânea. Utilizamos apenas prata 925 da mais alta qualidade, garantindo que cada peça não apenas encante pela beleza, mas também perdure através do tempo como um legado precioso.

Para a mulher moderna que compreende que verdadeiro luxo reside nos detalhes e na autenticidade, nossas {{.Keyword}} representam muito mais que acessórios – são símbolos de uma vida vivida com propósito e elegância.`,
)

type sectionTemplate struct {
	heading    *template.Template
	subheading string
	body       *template.Template
}

var sectionTemplates = []sectionTemplate{
	{
		heading:    mustParse("section", `A Arte de Escolher {{.Cap}} Excepcionais`),
		subheading: "Critérios de Qualidade Premium",
		body: mustParse("section", `A seleção de {{.Keyword}} verdadeiramente excepcionais requer conhecimento e sensibilidade. Na {{.Brand}}, cada peça passa por critérios rigorosos que garantem não apenas beleza, mas também durabilidade e significado.

O primeiro aspecto a considerar é a pureza do metal. Nossa prata 925 oferece a combinação perfeita entre resistência e maleabilidade, permitindo acabamentos refinados que realçam cada detalhe do design. Esta liga especial garante que suas {{.Keyword}} mantenham o brilho natural por anos.

Além da qualidade técnica, valorizamos o design como expressão artística. Cada {{.Singular}} é concebida para harmonizar com diferentes estilos e ocasiões, desde momentos íntimos até celebrações especiais, sempre mantendo a elegância como marca registrada.`),
	},
	{
		heading:    mustParse("section", `O Simbolismo Profundo das {{.Cap}}`),
		subheading: "Conexões Emocionais e Significados",
		body: mustParse("section", `Muito além de sua beleza física, as {{.Keyword}} carregam simbolismos profundos que ressoam com a alma feminina. Cada peça da {{.Brand}} é criada com a consciência de que se tornará parte da história pessoal de quem a escolhe.

A prata, metal lunar por excelência, sempre foi associada à intuição, sensibilidade e força interior feminina. Quando trabalhada com maestria artesanal, ela se torna um canal para expressar a complexidade e profundidade da personalidade moderna.

Nossas {{.Keyword}} são desenhadas para acompanhar diferentes fases da vida, adaptando-se e ganhando novos significados conforme as experiências se acumulam. É essa capacidade de evolução simbólica que torna cada peça verdadeiramente especial.`),
	},
	{
		heading:    mustParse("section", `Cuidados Essenciais para suas {{.Cap}}`),
		subheading: "Preservando a Beleza Através do Tempo",
		body: mustParse("section", `Manter suas {{.Keyword}} sempre radiantes é uma forma de honrar o investimento em qualidade e preservar as memórias que elas representam. Com cuidados adequados, suas peças {{.Brand}} manterão sua beleza original por gerações.

A limpeza regular com produtos específicos para prata é fundamental. Recomendamos o uso de flanela macia e produtos não abrasivos, sempre seguindo movimentos suaves que respeitem o acabamento artesanal de cada peça.

O armazenamento correto também é crucial. Mantenha suas {{.Keyword}} em ambiente seco, preferencialmente em compartimentos individuais para evitar arranhões. Evite o contato direto com perfumes e cosméticos antes que sejam completamente absorvidos pela pele.`),
	},
	{
		heading:    mustParse("section", `Tendências e Estilos em {{.Cap}}`),
		subheading: "Modernidade com Elegância Atemporal",
		body: mustParse("section", `O universo das {{.Keyword}} está em constante evolução, mas as melhores peças são aquelas que conseguem incorporar tendências contemporâneas sem perder sua essência clássica. Na {{.Brand}}, seguimos essa filosofia criando peças que são simultaneamente modernas e atemporais.

As tendências atuais favorecem designs que equilibram minimalismo sofisticado com detalhes marcantes. Peças versáteis que podem ser usadas sozinhas para um look clean ou combinadas para criar composições mais elaboradas e expressivas.

Nossa abordagem prioriza a criação de {{.Keyword}} que se adaptem ao estilo de vida contemporâneo, oferecendo versatilidade sem comprometer a elegância. Cada peça é pensada para complementar tanto looks casuais quanto ocasiões mais formais.`),
	},
}

var conclusionTemplate = mustParse("conclusion",
	`Escolher {{.Keyword}} da {{.Brand}} é muito mais que uma decisão de compra – é um investimento em sua identidade e autoexpressão. Cada peça de nossa coleção representa o encontro perfeito entre tradição artesanal e visão contemporânea, criado especialmente para mulheres que compreendem que verdadeira elegância transcende tendências passageiras.

Nossa dedicação à qualidade premium, combinada com designs que celebram a individualidade feminina, resulta em {{.Keyword}} que se tornam parte integrante da sua história pessoal. Cada detalhe é pensado para acompanhar você em momentos únicos, criando memórias preciosas que perdurarão através do tempo.

Convidamos você a descobrir nossa coleção exclusiva de {{.Keyword}} e encontrar a peça que falará diretamente ao seu coração. Na {{.Brand}}, acreditamos que toda mulher merece joias tão únicas quanto sua essência. Explore nossa coleção e permita-se ser envolvida pela magia da prata premium trabalhada com paixão artesanal.`)

type faqTemplate struct {
	question *template.Template
	answer   *template.Template
}

func faq(question, answer string) faqTemplate {
	return faqTemplate{question: mustParse("faq", question), answer: mustParse("faq", answer)}
}

// knownFAQ holds the curated questions for keywords with editorial coverage.
var knownFAQ = map[string][]faqTemplate{
	"joias de prata premium": {
		faq(`O que torna uma joia de prata verdadeiramente premium?`,
			`Joias de prata premium se distinguem pela pureza do metal (925 ou superior), acabamento artesanal impecável, design exclusivo e certificação de qualidade. Na {{.Brand}}, cada peça passa por rigoroso controle de qualidade.`),
		faq(`Como identificar joias de prata autênticas?`,
			`Joias de prata autênticas possuem marcação 925, peso adequado, não deixam marcas na pele e mantêm o brilho natural. A {{.Brand}} fornece certificado de autenticidade com cada peça.`),
		faq(`Qual a diferença entre prata 925 e prata comum?`,
			`A prata 925 contém 92,5% de prata pura, oferecendo durabilidade superior e resistência ao desgaste. É o padrão internacional para joias de qualidade premium.`),
	},
	"aliança de prata 925": {
		faq(`Aliança de prata 925 é adequada para uso diário?`,
			`Sim, a prata 925 é ideal para uso diário devido à sua durabilidade e resistência. Com os cuidados adequados, uma aliança {{.Brand}} mantém sua beleza por décadas.`),
		faq(`Como cuidar de aliança de prata para que não escureça?`,
			`Mantenha a aliança seca, evite contato com produtos químicos e guarde em local arejado. A oxidação natural pode ser facilmente removida com produtos específicos.`),
	},
}

// fallbackFAQ is used for every keyword without curated questions.
var fallbackFAQ = []faqTemplate{
	faq(`Por que escolher {{.Keyword}} da {{.Brand}}?`,
		`As {{.Keyword}} da {{.Brand}} combinam tradição artesanal com design contemporâneo, oferecendo peças únicas que refletem personalidade e sofisticação.`),
	faq(`Como {{.Keyword}} podem expressar minha personalidade?`,
		`Cada {{.Singular}} é uma extensão de quem você é, permitindo expressar sua individualidade através de designs únicos e significativos.`),
	faq(`Qual o simbolismo das {{.Keyword}}?`,
		`As {{.Keyword}} carregam significados profundos de conexão, amor e memórias preciosas, tornando-se parte da sua história pessoal.`),
}
