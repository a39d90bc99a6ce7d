package keyword

// DefaultKeywords is the candidate list used when the input is blank.
var DefaultKeywords = []string{
	"joias de prata premium",
	"aliança de prata 925",
	"anel de prata feminino",
	"colar de prata elegante",
	"joias artesanais prata",
	"brincos de prata delicados",
	"pulseira de prata moderna",
	"conjunto joias prata",
	"joias prata personalizadas",
	"pingente de prata único",
}

type stats struct {
	volume     int
	difficulty int
}

var knownMetrics = map[string]stats{
	"joias de prata premium":     {volume: 8900, difficulty: 42},
	"aliança de prata 925":       {volume: 12400, difficulty: 38},
	"anel de prata feminino":     {volume: 15600, difficulty: 45},
	"colar de prata elegante":    {volume: 6800, difficulty: 35},
	"joias artesanais prata":     {volume: 4200, difficulty: 28},
	"brincos de prata delicados": {volume: 3800, difficulty: 32},
	"pulseira de prata moderna":  {volume: 2900, difficulty: 30},
	"conjunto joias prata":       {volume: 5600, difficulty: 40},
	"joias prata personalizadas": {volume: 3200, difficulty: 25},
	"pingente de prata único":    {volume: 2400, difficulty: 22},
}

var knownVariations = map[string][]string{
	"joias de prata premium":  {"joias prata de luxo", "joias prata exclusivas", "joias prata sofisticadas"},
	"aliança de prata 925":    {"aliança prata maciça", "aliança prata verdadeira", "aliança prata certificada"},
	"anel de prata feminino":  {"anel prata mulher", "anel prata delicado", "anel prata elegante"},
	"colar de prata elegante": {"colar prata fino", "colar prata sofisticado", "corrente prata elegante"},
}

// variationSuffixes build the synthesized variations for unknown keywords.
var variationSuffixes = []string{"artesanal", "exclusivo", "premium"}

// Ranges for synthesized metrics, as [min, min+span).
const (
	syntheticVolumeMin      = 2000
	syntheticVolumeSpan     = 8000
	syntheticDifficultyMin  = 20
	syntheticDifficultySpan = 40
)
