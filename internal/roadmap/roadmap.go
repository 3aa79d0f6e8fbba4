// Package roadmap partitions a user's skill gaps into a week-by-week
// learning plan, ordered by the gap model's priority ranking.
package roadmap

import (
	"fmt"

	"github.com/abhisek/skillforge/internal/gap"
)

// PriorityLabel buckets a priority score for display.
type PriorityLabel string

const (
	PriorityHigh   PriorityLabel = "High"
	PriorityMedium PriorityLabel = "Medium"
	PriorityLow    PriorityLabel = "Low"
)

// FocusArea is one skill assigned to a week.
type FocusArea struct {
	Skill        string
	CurrentLevel float64
	TargetLevel  float64
	Difficulty   string // study material difficulty, from the current level
	Priority     PriorityLabel
}

// WeekPlan is the plan for a single week.
type WeekPlan struct {
	Week         int
	FocusAreas   []FocusArea
	DailyTargets []string
}

// Plan is the full roadmap. A plan with no weeks means the user already
// meets every requirement (Complete is true).
type Plan struct {
	Complete    bool
	Status      string
	TotalSkills int
	Weeks       []WeekPlan
}

// Generate builds a weekCount-week plan from the user's open gaps.
// Skills arrive pre-sorted by descending priority from the gap model and
// are split into contiguous buckets of max(1, total/weeks); the final
// bucket absorbs the remainder.
func Generate(userLevels, roleRequirements map[string]float64, weekCount int) Plan {
	if weekCount < 1 {
		weekCount = 1
	}

	var open []gap.Record
	for _, r := range gap.ComputeGaps(userLevels, roleRequirements) {
		if r.Gap > 0 {
			open = append(open, r)
		}
	}

	if len(open) == 0 {
		return Plan{
			Complete: true,
			Status:   "You have all required skills for this role!",
		}
	}

	plan := Plan{
		Status:      "Personalized learning roadmap",
		TotalSkills: len(open),
	}

	bucket := max(1, len(open)/weekCount)

	for week := 1; week <= weekCount; week++ {
		start := (week - 1) * bucket
		if start >= len(open) {
			break
		}
		end := start + bucket
		if week == weekCount || end > len(open) {
			end = len(open)
		}

		wp := WeekPlan{Week: week}
		for _, r := range open[start:end] {
			wp.FocusAreas = append(wp.FocusAreas, FocusArea{
				Skill:        r.Skill,
				CurrentLevel: r.Current,
				TargetLevel:  r.Required,
				Difficulty:   studyDifficulty(r.Current),
				Priority:     priorityLabel(r.PriorityScore),
			})
		}
		wp.DailyTargets = dailyTargets(wp.FocusAreas)
		plan.Weeks = append(plan.Weeks, wp)
	}

	return plan
}

// studyDifficulty labels the study material for a skill by the user's
// current level. Coarser than the quiz tiers on purpose: weekly plans
// only distinguish three bands.
func studyDifficulty(current float64) string {
	switch {
	case current <= 3:
		return "Beginner"
	case current <= 6:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

func priorityLabel(score float64) PriorityLabel {
	switch {
	case score > 15:
		return PriorityHigh
	case score > 8:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// dailyTargets produces the fixed 6-study-days + 1-review-day template.
// Only the bucket's first skill is referenced — a known simplification,
// not a rotation across all bucket skills.
func dailyTargets(areas []FocusArea) []string {
	targets := make([]string, 0, 7)
	for day := 1; day <= 6; day++ {
		target := fmt.Sprintf("Day %d: ", day)
		if len(areas) > 0 {
			target += fmt.Sprintf("Study %s (2-3 hours)", areas[0].Skill)
		}
		targets = append(targets, target)
	}
	return append(targets, "Day 7: Review & Practice")
}
