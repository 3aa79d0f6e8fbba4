package roadmap

import (
	"strings"
	"testing"

	"github.com/abhisek/skillforge/internal/gap"
)

func TestGenerateNoGaps(t *testing.T) {
	levels := map[string]float64{"Python": 9, "SQL": 8}
	reqs := map[string]float64{"Python": 8, "SQL": 7}

	plan := Generate(levels, reqs, 12)
	if !plan.Complete {
		t.Fatal("expected a complete plan when all requirements are met")
	}
	if len(plan.Weeks) != 0 {
		t.Fatalf("complete plan should have no weeks, got %d", len(plan.Weeks))
	}
}

func TestGenerateBucketsAndRemainder(t *testing.T) {
	levels := map[string]float64{}
	reqs := map[string]float64{
		"Python": 8, "SQL": 7, "Statistics": 7,
		"Machine Learning": 8, "Docker": 5,
	}

	// 5 skills over 2 weeks: bucket = 2, final week absorbs 3.
	plan := Generate(levels, reqs, 2)
	if plan.TotalSkills != 5 {
		t.Fatalf("TotalSkills = %d, want 5", plan.TotalSkills)
	}
	if len(plan.Weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(plan.Weeks))
	}
	if n := len(plan.Weeks[0].FocusAreas); n != 2 {
		t.Errorf("week 1 has %d focus areas, want 2", n)
	}
	if n := len(plan.Weeks[1].FocusAreas); n != 3 {
		t.Errorf("week 2 has %d focus areas, want 3", n)
	}
}

func TestGenerateMoreWeeksThanSkills(t *testing.T) {
	plan := Generate(nil, map[string]float64{"Python": 8, "SQL": 7}, 12)
	if len(plan.Weeks) != 2 {
		t.Fatalf("got %d weeks, want 2 (one skill each, trailing weeks dropped)", len(plan.Weeks))
	}
	for _, w := range plan.Weeks {
		if len(w.FocusAreas) != 1 {
			t.Errorf("week %d has %d focus areas, want 1", w.Week, len(w.FocusAreas))
		}
	}
}

func TestGeneratePriorityOrder(t *testing.T) {
	// Python has the larger gap*required product and must come first.
	reqs := map[string]float64{"Python": 10, "Docker": 4}
	plan := Generate(map[string]float64{"Python": 2, "Docker": 2}, reqs, 2)

	if plan.Weeks[0].FocusAreas[0].Skill != "Python" {
		t.Fatalf("week 1 skill = %q, want Python", plan.Weeks[0].FocusAreas[0].Skill)
	}
}

func TestFocusAreaLabels(t *testing.T) {
	plan := Generate(map[string]float64{"Python": 2}, map[string]float64{"Python": 10}, 1)
	fa := plan.Weeks[0].FocusAreas[0]

	if fa.Difficulty != "Beginner" {
		t.Errorf("difficulty = %q, want Beginner for level 2", fa.Difficulty)
	}
	// gap 8 * required 10 / 10 = 8 -> not High, not >8 either.
	if fa.Priority != PriorityLow {
		t.Errorf("priority = %q, want Low for score 8", fa.Priority)
	}
}

func TestPriorityLabelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  PriorityLabel
	}{
		{16, PriorityHigh},
		{15, PriorityMedium},
		{8.1, PriorityMedium},
		{8, PriorityLow},
		{0, PriorityLow},
	}
	for _, c := range cases {
		if got := priorityLabel(c.score); got != c.want {
			t.Errorf("priorityLabel(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestDailyTargets(t *testing.T) {
	plan := Generate(nil, map[string]float64{"Git": 6}, 1)
	targets := plan.Weeks[0].DailyTargets

	if len(targets) != 7 {
		t.Fatalf("got %d daily targets, want 7", len(targets))
	}
	if !strings.Contains(targets[0], "Git") {
		t.Errorf("day 1 target %q should reference the week's first skill", targets[0])
	}
	if targets[6] != "Day 7: Review & Practice" {
		t.Errorf("day 7 target = %q", targets[6])
	}
}

func TestRecommendationSummary(t *testing.T) {
	records := []gap.Record{
		{Skill: "Python", Gap: 6, PriorityScore: 20},
		{Skill: "SQL", Gap: 3, PriorityScore: 9},
		{Skill: "Git", Gap: 2, PriorityScore: 4},
		{Skill: "Docker", Gap: 1, PriorityScore: 2},
	}

	s := RecommendationSummary(records)
	if len(s.ImmediateActions) != 3 {
		t.Fatalf("got %d actions, want 3", len(s.ImmediateActions))
	}
	if s.ImmediateActions[0].Skill != "Python" || s.ImmediateActions[0].Effort != "High" {
		t.Errorf("top action = %+v, want Python/High", s.ImmediateActions[0])
	}
	if s.ImmediateActions[1].Effort != "Medium" {
		t.Errorf("SQL effort = %q, want Medium", s.ImmediateActions[1].Effort)
	}
	// total gap 12 -> middle band.
	if s.TimelineEstimate != "4-8 weeks to reach target proficiency" {
		t.Errorf("timeline = %q", s.TimelineEstimate)
	}
}

func TestRecommendationSummaryTimelineBands(t *testing.T) {
	long := RecommendationSummary([]gap.Record{{Skill: "A", Gap: 15, PriorityScore: 1}})
	if long.TimelineEstimate != "8-12 weeks to reach target proficiency" {
		t.Errorf("timeline for total 15 = %q", long.TimelineEstimate)
	}
	short := RecommendationSummary([]gap.Record{{Skill: "A", Gap: 2, PriorityScore: 1}})
	if short.TimelineEstimate != "2-4 weeks to reach target proficiency" {
		t.Errorf("timeline for total 2 = %q", short.TimelineEstimate)
	}
}

func TestSkillPath(t *testing.T) {
	p := SkillPath("Python", 3, 8)
	if p.LevelsToImprove != 5 {
		t.Errorf("LevelsToImprove = %v, want 5", p.LevelsToImprove)
	}
	if len(p.Stages) != 4 {
		t.Fatalf("got %d stages, want 4", len(p.Stages))
	}
	for _, st := range p.Stages {
		if len(st.Milestones) != 3 {
			t.Errorf("stage %q has %d milestones, want 3", st.Name, len(st.Milestones))
		}
	}
}
