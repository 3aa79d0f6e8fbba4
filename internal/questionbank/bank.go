package questionbank

import (
	"fmt"
	"slices"
	"sort"
)

// Question is a single multiple-choice question in the bank.
// Questions are immutable reference data; the bank hands out copies.
type Question struct {
	Skill        string
	Difficulty   Difficulty
	Text         string
	Options      []string
	CorrectIndex int
}

// bank holds the question catalog with precomputed indices.
type bank struct {
	bySkillTier map[string]map[Difficulty][]Question
	skills      []string
}

// b is the package-level bank singleton, set by init() in seed.go.
var b *bank

// buildBank constructs the bank from the seed slice and validates it.
// Called once from init(); a malformed seed is a programming error.
func buildBank(questions []Question) *bank {
	bk := &bank{
		bySkillTier: make(map[string]map[Difficulty][]Question),
	}

	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			panic(fmt.Sprintf("questionbank: seed entry %d: %v", i, err))
		}
		tiers, ok := bk.bySkillTier[q.Skill]
		if !ok {
			tiers = make(map[Difficulty][]Question)
			bk.bySkillTier[q.Skill] = tiers
			bk.skills = append(bk.skills, q.Skill)
		}
		tiers[q.Difficulty] = append(tiers[q.Difficulty], q)
	}

	sort.Strings(bk.skills)
	return bk
}

// validateQuestion checks the authoring invariants for a single question.
func validateQuestion(q Question) error {
	if q.Skill == "" {
		return fmt.Errorf("empty skill")
	}
	if q.Text == "" {
		return fmt.Errorf("empty question text for skill %q", q.Skill)
	}
	if TierIndex(q.Difficulty) == 0 && q.Difficulty != Beginner {
		return fmt.Errorf("unknown difficulty %q for skill %q", q.Difficulty, q.Skill)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q needs at least 2 options, has %d", q.Text, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range [0,%d)", q.Text, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Get returns the questions for a skill at a difficulty tier.
// Returns an empty slice when the pool has no entries — per-tier gaps
// are tolerated and handled by the quiz generator's fallback scan.
func Get(skill string, d Difficulty) []Question {
	tiers, ok := b.bySkillTier[skill]
	if !ok {
		return nil
	}
	return slices.Clone(tiers[d])
}

// HasSkill reports whether the bank has any questions for the skill,
// at any difficulty tier.
func HasSkill(skill string) bool {
	tiers, ok := b.bySkillTier[skill]
	if !ok {
		return false
	}
	for _, pool := range tiers {
		if len(pool) > 0 {
			return true
		}
	}
	return false
}

// Skills returns all skills covered by the bank, sorted.
func Skills() []string {
	return slices.Clone(b.skills)
}

// Count returns the total number of questions for a skill across all tiers.
func Count(skill string) int {
	n := 0
	for _, pool := range b.bySkillTier[skill] {
		n += len(pool)
	}
	return n
}
