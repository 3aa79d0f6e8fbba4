package roadmap

import (
	"fmt"
	"sort"

	"github.com/abhisek/skillforge/internal/gap"
)

// Action is an immediate recommendation for a top-priority skill.
type Action struct {
	Skill  string
	Advice string
	Effort string
}

// Summary condenses the gap analysis into next steps and a timeline.
type Summary struct {
	ImmediateActions []Action
	TimelineEstimate string
}

// RecommendationSummary picks the top 3 open gaps by priority and
// estimates the total time to close every gap.
func RecommendationSummary(records []gap.Record) Summary {
	sorted := make([]gap.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityScore > sorted[j].PriorityScore
	})

	var s Summary
	for i, r := range sorted {
		if i >= 3 {
			break
		}
		if r.Gap <= 0 {
			continue
		}
		effort := "Medium"
		if r.Gap >= 5 {
			effort = "High"
		}
		s.ImmediateActions = append(s.ImmediateActions, Action{
			Skill:  r.Skill,
			Advice: fmt.Sprintf("Start with %s: %.1f levels to improve", r.Skill, r.Gap),
			Effort: effort,
		})
	}

	var total float64
	for _, r := range records {
		total += r.Gap
	}
	switch {
	case total >= 15:
		s.TimelineEstimate = "8-12 weeks to reach target proficiency"
	case total >= 8:
		s.TimelineEstimate = "4-8 weeks to reach target proficiency"
	default:
		s.TimelineEstimate = "2-4 weeks to reach target proficiency"
	}
	return s
}

// PathStage is a proficiency band with its milestones.
type PathStage struct {
	Name       string
	Milestones []string
}

// LearningPath describes the full progression for one skill.
type LearningPath struct {
	Skill           string
	CurrentLevel    float64
	TargetLevel     float64
	LevelsToImprove float64
	Stages          []PathStage
}

// SkillPath builds the staged progression from the user's current level
// to the role's required level for a single skill.
func SkillPath(skill string, current, target float64) LearningPath {
	return LearningPath{
		Skill:           skill,
		CurrentLevel:    current,
		TargetLevel:     target,
		LevelsToImprove: target - current,
		Stages: []PathStage{
			{Name: "Beginner (1-3)", Milestones: []string{
				"Master fundamentals",
				"Understand core concepts",
				"Complete beginner tutorials",
			}},
			{Name: "Intermediate (4-6)", Milestones: []string{
				"Build projects",
				"Practice problem-solving",
				"Study advanced concepts",
			}},
			{Name: "Advanced (7-9)", Milestones: []string{
				"Contribute to open source",
				"Design complex systems",
				"Mentor others",
			}},
			{Name: "Expert (9-10)", Milestones: []string{
				"Master edge cases",
				"Optimize for performance",
				"Create original solutions",
			}},
		},
	}
}
