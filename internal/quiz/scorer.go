package quiz

import (
	"math"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// SkillResult summarizes a user's quiz performance on one skill.
// Correct/Total is the raw accuracy; MaxDifficulty is the highest tier
// answered correctly.
type SkillResult struct {
	Correct       int
	Total         int
	MaxDifficulty questionbank.Difficulty
	Score         float64 // 0-10 proficiency estimate
}

// Score computes per-skill results from a generated quiz and the
// submitted answers (item ID → selected option index). Items missing
// from answers count toward Total only.
//
// The 0-10 score is 2 + tierIndex*2.5 + accuracy*2, capped at 10 and
// rounded to one decimal. Reaching a higher tier outweighs raw accuracy;
// with zero correct answers the score floors at 2.0.
func Score(items []Item, answers map[int]int) map[string]SkillResult {
	results := make(map[string]SkillResult)

	for _, item := range items {
		res, ok := results[item.Skill]
		if !ok {
			res = SkillResult{MaxDifficulty: questionbank.Beginner}
		}

		res.Total++
		if selected, answered := answers[item.ID]; answered && selected == item.CorrectIndex {
			res.Correct++
			if questionbank.TierIndex(item.Difficulty) >= questionbank.TierIndex(res.MaxDifficulty) {
				res.MaxDifficulty = item.Difficulty
			}
		}

		results[item.Skill] = res
	}

	for skill, res := range results {
		ratio := 0.0
		if res.Total > 0 {
			ratio = float64(res.Correct) / float64(res.Total)
		}
		tier := float64(questionbank.TierIndex(res.MaxDifficulty))
		res.Score = math.Min(10, round1(2+tier*2.5+ratio*2))
		results[skill] = res
	}

	return results
}

// BlendLevel folds a measured quiz score into an existing skill level:
// a plain average with the previous level, rounded to one decimal. This
// is a simple smoothing blend — not a confidence-weighted estimator.
// Without a previous level the score is adopted as-is.
func BlendLevel(previous *float64, score float64) float64 {
	if previous == nil {
		return round1(score)
	}
	return round1((*previous + score) / 2)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
