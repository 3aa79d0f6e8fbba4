// Package quiz implements the adaptive quiz engine: question selection
// with per-skill difficulty that ratchets upward within one generation
// pass, and scoring that feeds measured levels back into the profile.
package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// Item is a question instance placed into a generated quiz. The ID is
// monotonic across the whole quiz; Difficulty records the tier the
// question was actually drawn at, which can differ from its starting
// tier when a pool was empty.
type Item struct {
	ID           int
	Skill        string
	Difficulty   questionbank.Difficulty
	Text         string
	Options      []string
	CorrectIndex int
}

// Generator produces adaptive quizzes from the question bank.
// The random source is injected so tests can pin the draw sequence.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a Generator with a fixed seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// StartingDifficulty maps a 0-10 skill level to the tier the first
// question for that skill is drawn at. Fractional levels compare
// directly against the thresholds — 3.5 starts at intermediate.
func StartingDifficulty(level float64) questionbank.Difficulty {
	switch {
	case level <= 3:
		return questionbank.Beginner
	case level <= 5:
		return questionbank.Intermediate
	case level <= 7:
		return questionbank.Advanced
	default:
		return questionbank.Expert
	}
}

// defaultLevel is assumed for skills the user has not rated yet,
// placing them at intermediate.
const defaultLevel = 5

// Generate builds an ordered quiz: perSkill questions for each input
// skill, skill-major, difficulty ratcheting one tier up per draw on the
// optimistic assumption that the previous answer was correct.
//
// Skills without catalog coverage are skipped silently; a draw whose
// pool is empty at every tier emits nothing. An all-empty result is the
// caller's "no questions available" signal, not an error.
func (g *Generator) Generate(skills []string, userLevels map[string]float64, perSkill int) []Item {
	if perSkill < 1 {
		return nil
	}

	var quiz []Item
	nextID := 0

	for _, skill := range skills {
		if !questionbank.HasSkill(skill) {
			continue
		}

		level := float64(defaultLevel)
		if l, ok := userLevels[skill]; ok {
			level = l
		}
		quiz = g.generateSkill(skill, level, perSkill, &nextID, quiz)
	}

	return quiz
}

func (g *Generator) generateSkill(skill string, level float64, perSkill int, nextID *int, quiz []Item) []Item {
	difficulty := StartingDifficulty(level)

	for range perSkill {
		pool := questionbank.Get(skill, difficulty)
		if len(pool) == 0 {
			// Fall back to the first non-empty tier, lowest first,
			// and continue ratcheting from there.
			for _, d := range questionbank.Tiers() {
				if p := questionbank.Get(skill, d); len(p) > 0 {
					pool = p
					difficulty = d
					break
				}
			}
		}
		if len(pool) == 0 {
			continue
		}

		// Uniform draw; repeats across draws are allowed.
		q := pool[g.rng.IntN(len(pool))]

		quiz = append(quiz, Item{
			ID:           *nextID,
			Skill:        skill,
			Difficulty:   difficulty,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
		*nextID++

		difficulty = questionbank.StepUp(difficulty)
	}

	return quiz
}
