package quiz

import (
	"testing"

	"github.com/abhisek/skillforge/internal/questionbank"
)

func item(id int, skill string, d questionbank.Difficulty, correct int) Item {
	return Item{
		ID:           id,
		Skill:        skill,
		Difficulty:   d,
		Text:         "q",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
	}
}

func TestScoreSingleExpertCorrectClampsToTen(t *testing.T) {
	items := []Item{item(0, "Python", questionbank.Expert, 1)}
	results := Score(items, map[int]int{0: 1})

	r := results["Python"]
	if r.Correct != 1 || r.Total != 1 {
		t.Errorf("correct/total = %d/%d, want 1/1", r.Correct, r.Total)
	}
	if r.MaxDifficulty != questionbank.Expert {
		t.Errorf("max difficulty = %s, want expert", r.MaxDifficulty)
	}
	// 2 + 3*2.5 + 1*2 = 11.5 → clamped to 10.
	if r.Score != 10 {
		t.Errorf("score = %v, want 10", r.Score)
	}
}

func TestScoreUnansweredParticipationFloor(t *testing.T) {
	items := []Item{
		item(0, "SQL", questionbank.Intermediate, 2),
		item(1, "SQL", questionbank.Advanced, 0),
	}
	results := Score(items, map[int]int{})

	r := results["SQL"]
	if r.Correct != 0 || r.Total != 2 {
		t.Errorf("correct/total = %d/%d, want 0/2", r.Correct, r.Total)
	}
	if r.MaxDifficulty != questionbank.Beginner {
		t.Errorf("max difficulty = %s, want beginner when nothing answered", r.MaxDifficulty)
	}
	if r.Score != 2.0 {
		t.Errorf("score = %v, want participation floor 2.0", r.Score)
	}
}

func TestScoreWrongAnswerNeverRaisesTier(t *testing.T) {
	items := []Item{
		item(0, "Git", questionbank.Beginner, 1),
		item(1, "Git", questionbank.Advanced, 1),
	}
	// Correct beginner, wrong advanced.
	results := Score(items, map[int]int{0: 1, 1: 0})

	r := results["Git"]
	if r.MaxDifficulty != questionbank.Beginner {
		t.Errorf("max difficulty = %s, wrong answers must not raise it", r.MaxDifficulty)
	}
	if r.Correct != 1 {
		t.Errorf("correct = %d, want 1", r.Correct)
	}
}

func TestScoreGroupsBySkill(t *testing.T) {
	items := []Item{
		item(0, "Python", questionbank.Beginner, 0),
		item(1, "SQL", questionbank.Beginner, 0),
		item(2, "Python", questionbank.Intermediate, 0),
	}
	results := Score(items, map[int]int{0: 0, 1: 0, 2: 0})

	if len(results) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(results))
	}
	if results["Python"].Total != 2 || results["SQL"].Total != 1 {
		t.Errorf("totals = %d/%d, want 2/1",
			results["Python"].Total, results["SQL"].Total)
	}
}

func TestScoreHalfAccuracyIntermediate(t *testing.T) {
	items := []Item{
		item(0, "CSS", questionbank.Intermediate, 1),
		item(1, "CSS", questionbank.Intermediate, 1),
	}
	results := Score(items, map[int]int{0: 1, 1: 3})

	// 2 + 1*2.5 + 0.5*2 = 5.5
	if got := results["CSS"].Score; got != 5.5 {
		t.Errorf("score = %v, want 5.5", got)
	}
}

func TestBlendLevel(t *testing.T) {
	prev := 4.0
	if got := BlendLevel(&prev, 7.0); got != 5.5 {
		t.Errorf("blend(4, 7) = %v, want 5.5", got)
	}
	if got := BlendLevel(nil, 7.3); got != 7.3 {
		t.Errorf("blend(nil, 7.3) = %v, want 7.3", got)
	}
	odd := 4.2
	if got := BlendLevel(&odd, 7.5); got != 5.9 {
		t.Errorf("blend(4.2, 7.5) = %v, want 5.9 after rounding", got)
	}
}

// Feeding a score >= the previous level back through the blend never
// widens the gap for that skill.
func TestBlendLoopNeverWidensGap(t *testing.T) {
	reqs := map[string]float64{"Python": 8}
	levels := map[string]float64{"Python": 3}

	items := []Item{item(0, "Python", questionbank.Advanced, 1)}
	results := Score(items, map[int]int{0: 1})
	score := results["Python"].Score

	prev := levels["Python"]
	if score < prev {
		t.Fatalf("test setup: score %v below previous %v", score, prev)
	}
	gapBefore := reqs["Python"] - prev
	levels["Python"] = BlendLevel(&prev, score)
	gapAfter := reqs["Python"] - levels["Python"]

	if gapAfter > gapBefore {
		t.Errorf("gap widened after blend: %v -> %v", gapBefore, gapAfter)
	}
}
