// Package predict contains closed-form heuristics for learning-time
// estimation and resource recommendation.
package predict

import (
	"math"
	"sort"

	"github.com/abhisek/skillforge/internal/gap"
)

// ResourceType is the kind of learning material to reach for first.
type ResourceType string

const (
	ResourceCourse   ResourceType = "Course"
	ResourceTutorial ResourceType = "Tutorial"
	ResourceBook     ResourceType = "Book"
	ResourceProject  ResourceType = "Project"
)

// dependencies lists hard prerequisites between catalog skills. A skill
// appears after all of its listed prerequisites in SkillOrder output,
// provided those prerequisites are themselves gaps.
var dependencies = map[string][]string{
	"Machine Learning":   {"Python", "Statistics"},
	"Deep Learning":      {"Python", "Machine Learning"},
	"SQL":                {"Python"},
	"Data Visualization": {"SQL", "Python"},
}

// WeeksToTarget estimates how many weeks of study it takes to close the
// gap between current and target at the given weekly effort. Higher
// current proficiency and more hours both speed things up.
func WeeksToTarget(current, target, hoursPerWeek float64) float64 {
	g := math.Max(0, target-current)
	rate := 1 + hoursPerWeek/10 + current/10
	return math.Max(1, round1(g*3/rate))
}

// LevelAtWeeks estimates the level reachable after studying for the
// given number of weeks, capped at 10.
func LevelAtWeeks(current, weeks, hoursPerWeek float64) float64 {
	rate := 0.3 + hoursPerWeek/40
	return round1(math.Min(10, current+weeks*rate))
}

// RecommendResource picks a material type for a skill: structured
// courses for beginners, hands-on projects for large gaps, tutorials
// otherwise. priority is accepted for future weighting but does not
// change the outcome today.
func RecommendResource(current, gapSize, priority float64) ResourceType {
	switch {
	case current < 3:
		return ResourceCourse
	case gapSize > 5:
		return ResourceProject
	default:
		return ResourceTutorial
	}
}

// SkillOrder arranges gap skills so prerequisites come first. Only
// prerequisites that are themselves in the gap set constrain the order;
// ties resolve alphabetically. A dependency cycle cannot currently
// occur in the table, but if one did the cycle members are appended in
// alphabetical order rather than dropped.
func SkillOrder(records []gap.Record) []string {
	inSet := make(map[string]bool, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		inSet[r.Skill] = true
		names = append(names, r.Skill)
	}
	sort.Strings(names)

	ordered := make([]string, 0, len(names))
	placed := make(map[string]bool, len(names))
	remaining := names

	for len(remaining) > 0 {
		progressed := false
		var next []string
		for _, skill := range remaining {
			ready := true
			for _, dep := range dependencies[skill] {
				if inSet[dep] && !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, skill)
				placed[skill] = true
				progressed = true
			} else {
				next = append(next, skill)
			}
		}
		if !progressed {
			ordered = append(ordered, next...)
			break
		}
		remaining = next
	}
	return ordered
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
