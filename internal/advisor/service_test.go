package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/llm"
)

func sampleInput() Input {
	return Input{
		Role:      "Data Scientist",
		Readiness: 62.5,
		Records: []gap.Record{
			{Skill: "Machine Learning", Current: 3, Required: 8, Gap: 5, PriorityScore: 4},
			{Skill: "Statistics", Current: 4, Required: 7, Gap: 3, PriorityScore: 2.1},
			{Skill: "Python", Current: 8, Required: 8, Gap: 0, PriorityScore: 0},
		},
	}
}

func TestGenerateFromProvider(t *testing.T) {
	canned := `{
		"summary": "Prioritize machine learning fundamentals before interview prep.",
		"focus_areas": [
			{"skill": "Machine Learning", "recommendation": "Work through a supervised learning course and build one end-to-end project."}
		],
		"weekly_hours": 12
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(canned)})
	svc := NewService(mock, DefaultConfig())

	advice := svc.Generate(context.Background(), sampleInput())

	if advice.Source != "llm" {
		t.Errorf("Source = %q, want llm", advice.Source)
	}
	if advice.WeeklyHours != 12 {
		t.Errorf("WeeklyHours = %d, want 12", advice.WeeklyHours)
	}
	if len(advice.FocusAreas) != 1 || advice.FocusAreas[0].Skill != "Machine Learning" {
		t.Errorf("unexpected focus areas: %+v", advice.FocusAreas)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "coaching-advice" {
		t.Errorf("expected coaching-advice schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Data Scientist") {
		t.Error("user message should include the target role")
	}
	if !strings.Contains(req.Messages[0].Content, "Machine Learning") {
		t.Error("user message should include gap skills")
	}
	if strings.Contains(req.Messages[0].Content, "Python: level") {
		t.Error("skills without a gap should not be listed")
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	// Empty queue makes the mock return ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	advice := svc.Generate(context.Background(), sampleInput())

	if advice.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", advice.Source)
	}
	if advice.Summary == "" {
		t.Error("fallback advice should have a summary")
	}
}

func TestGenerateFallsBackOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{]`)})
	svc := NewService(mock, DefaultConfig())

	advice := svc.Generate(context.Background(), sampleInput())
	if advice.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", advice.Source)
	}
}

func TestGenerateNilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	advice := svc.Generate(context.Background(), sampleInput())
	if advice.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", advice.Source)
	}
}

func TestFallbackAdvice(t *testing.T) {
	t.Run("no gaps", func(t *testing.T) {
		advice := FallbackAdvice(Input{
			Role:      "Data Analyst",
			Readiness: 100,
			Records: []gap.Record{
				{Skill: "SQL", Current: 8, Required: 8, Gap: 0},
			},
		})
		if len(advice.FocusAreas) != 0 {
			t.Errorf("expected no focus areas, got %d", len(advice.FocusAreas))
		}
		if advice.WeeklyHours != 3 {
			t.Errorf("WeeklyHours = %d, want 3", advice.WeeklyHours)
		}
		if !strings.Contains(advice.Summary, "every skill requirement") {
			t.Errorf("unexpected summary: %q", advice.Summary)
		}
	})

	t.Run("large total gap", func(t *testing.T) {
		advice := FallbackAdvice(Input{
			Role:      "ML Engineer",
			Readiness: 30,
			Records: []gap.Record{
				{Skill: "Deep Learning", Gap: 8},
				{Skill: "Machine Learning", Gap: 7},
				{Skill: "Python", Gap: 4},
				{Skill: "SQL", Gap: 2},
			},
		})
		if advice.WeeklyHours != 15 {
			t.Errorf("WeeklyHours = %d, want 15", advice.WeeklyHours)
		}
		if len(advice.FocusAreas) != 3 {
			t.Errorf("focus areas = %d, want 3 (capped)", len(advice.FocusAreas))
		}
		if advice.FocusAreas[0].Skill != "Deep Learning" {
			t.Errorf("first focus = %q, want Deep Learning", advice.FocusAreas[0].Skill)
		}
	})

	t.Run("moderate gap", func(t *testing.T) {
		advice := FallbackAdvice(Input{
			Role:      "Data Analyst",
			Readiness: 70,
			Records:   []gap.Record{{Skill: "SQL", Gap: 9}},
		})
		if advice.WeeklyHours != 10 {
			t.Errorf("WeeklyHours = %d, want 10", advice.WeeklyHours)
		}
	})

	t.Run("small gap", func(t *testing.T) {
		advice := FallbackAdvice(Input{
			Role:      "Data Analyst",
			Readiness: 90,
			Records:   []gap.Record{{Skill: "SQL", Gap: 2}},
		})
		if advice.WeeklyHours != 5 {
			t.Errorf("WeeklyHours = %d, want 5", advice.WeeklyHours)
		}
	})
}

func TestAskWithProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Focus on pandas and SQL joins this week."`),
	})
	svc := NewService(mock, DefaultConfig())

	reply := svc.Ask(context.Background(), "what should I study?", "The user targets Data Analyst.")
	if reply != "Focus on pandas and SQL joins this week." {
		t.Errorf("unexpected reply: %q", reply)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat requests should not set a schema")
	}
	if !strings.Contains(req.System, "Data Analyst") {
		t.Error("role context should be appended to the system prompt")
	}
}

func TestAskFallbackKeywords(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	cases := []struct {
		message string
		want    string
	}{
		{"How do I build a roadmap?", "Prioritize skills"},
		{"Where do I learn PYTHON?", "Automate the Boring Stuff"},
		{"Any interview tips?", "LeetCode"},
		{"I need motivation", "Consistency beats intensity"},
		{"hello there", "general tips"},
	}
	for _, tc := range cases {
		got := svc.Ask(context.Background(), tc.message, "")
		if !strings.Contains(got, tc.want) {
			t.Errorf("Ask(%q) = %q, want substring %q", tc.message, got, tc.want)
		}
	}
}

func TestAskFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	reply := svc.Ask(context.Background(), "what about my roadmap?", "")
	if !strings.Contains(reply, "Prioritize skills") {
		t.Errorf("expected roadmap fallback, got %q", reply)
	}
}
