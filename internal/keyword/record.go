// Package keyword scores candidate keywords for an article run.
//
// Scoring is table driven: known keywords carry fixed search volume,
// difficulty and semantic variations; unknown keywords receive synthesized
// values. Nothing here fails on well-formed input.
package keyword

import "math"

// Intent is the coarse search-intent class of a keyword.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentCommercial    Intent = "commercial"
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
)

// Record is the scored view of one candidate keyword.
type Record struct {
	Keyword    string   `json:"keyword"`
	Volume     int      `json:"volume"`
	Difficulty int      `json:"difficulty"`
	Intent     Intent   `json:"intent"`
	Score      int      `json:"score"`
	Variations []string `json:"variations"`
}

// RankingScore combines monthly search volume and difficulty (0-100) into a
// single opportunity score. Higher volume and lower difficulty both raise it.
func RankingScore(volume, difficulty int) int {
	raw := float64(volume)/100*0.6 + float64(100-difficulty)*0.4
	return int(math.Round(raw))
}

// DifficultyBand labels a difficulty value the way the analysis table shows it.
func DifficultyBand(difficulty int) string {
	switch {
	case difficulty < 30:
		return "easy"
	case difficulty < 50:
		return "medium"
	default:
		return "hard"
	}
}
