// Package gap computes per-skill gaps, priority scores, and overall
// readiness from a user's current levels and a role's requirements.
// All functions are pure projections: missing user levels default to 0
// and no function mutates its inputs.
package gap

import (
	"fmt"
	"math"
	"sort"
)

// Record is the derived gap state for a single skill.
type Record struct {
	Skill         string
	Current       float64
	Required      float64
	Gap           float64 // max(required-current, 0)
	PriorityScore float64 // gap * required/10
	Status        string
}

// Strength describes a skill where the user meets or exceeds the requirement.
type Strength struct {
	Skill    string
	Current  float64
	Required float64
	Surplus  float64
}

// round1 rounds to one decimal place. Levels are tracked in 0.5 steps so
// one decimal is enough to keep scores stable across the blend loop.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeGaps returns one Record per required skill, sorted by priority
// score descending. Ties keep the requirement definition order, so the
// output is stable for a given role.
func ComputeGaps(userLevels, roleRequirements map[string]float64) []Record {
	skills := sortedSkills(roleRequirements)

	records := make([]Record, 0, len(skills))
	for _, skill := range skills {
		required := roleRequirements[skill]
		current := round1(userLevels[skill])
		g := round1(math.Max(required-current, 0))

		var priority float64
		if required > 0 {
			priority = round1(g * required / 10)
		}

		status := "Strong"
		if g > 0 {
			status = fmt.Sprintf("Gap: %.1f", g)
		}

		records = append(records, Record{
			Skill:         skill,
			Current:       current,
			Required:      round1(required),
			Gap:           g,
			PriorityScore: priority,
			Status:        status,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PriorityScore > records[j].PriorityScore
	})
	return records
}

// Readiness returns the overall readiness percentage in [0,100]:
// 100 * sum(min(current, required)) / sum(required). A role with no
// positive requirements yields 0.
func Readiness(userLevels, roleRequirements map[string]float64) float64 {
	var totalRequired, totalCurrent float64
	for skill, required := range roleRequirements {
		totalRequired += required
		totalCurrent += math.Min(userLevels[skill], required)
	}
	if totalRequired <= 0 {
		return 0
	}
	r := totalCurrent / totalRequired * 100
	if r > 100 {
		r = 100
	}
	return round1(r)
}

// Strengths returns the skills where current >= required, in requirement
// definition order.
func Strengths(userLevels, roleRequirements map[string]float64) []Strength {
	var out []Strength
	for _, skill := range sortedSkills(roleRequirements) {
		required := roleRequirements[skill]
		current := round1(userLevels[skill])
		if current >= required {
			out = append(out, Strength{
				Skill:    skill,
				Current:  current,
				Required: round1(required),
				Surplus:  round1(current - required),
			})
		}
	}
	return out
}

// sortedSkills gives requirement maps a deterministic iteration order.
// Go map iteration is randomized, so "definition order" is pinned to
// the skill name ordering the role catalog also uses.
func sortedSkills(requirements map[string]float64) []string {
	skills := make([]string, 0, len(requirements))
	for s := range requirements {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
