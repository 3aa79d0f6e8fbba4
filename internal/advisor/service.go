package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/llm"
)

// Service generates coaching advice and answers free-form questions.
// A nil provider is valid: every call then serves fallback output.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advisor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces structured coaching advice for the assessment.
// LLM failures degrade to deterministic fallback advice, never an error.
func (s *Service) Generate(ctx context.Context, input Input) *Advice {
	if s.provider == nil {
		return FallbackAdvice(input)
	}

	advice, err := s.generate(ctx, input)
	if err != nil {
		return FallbackAdvice(input)
	}
	return advice
}

func (s *Service) generate(ctx context.Context, input Input) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "coaching")

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(input)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var advice Advice
	if err := json.Unmarshal(resp.Content, &advice); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	advice.Source = "llm"
	return &advice, nil
}

// Ask sends a free-form coaching question. roleContext, when non-empty,
// is appended to the system prompt so answers stay role-aware.
// Failures degrade to canned fallback replies.
func (s *Service) Ask(ctx context.Context, message, roleContext string) string {
	if s.provider == nil {
		return fallbackChat(message)
	}

	ctx = llm.WithPurpose(ctx, "chat")

	system := chatSystemPrompt
	if roleContext != "" {
		system += " " + roleContext
	}

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil || len(resp.Content) == 0 {
		return fallbackChat(message)
	}

	// Raw text responses may arrive as a JSON string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err == nil {
		return text
	}
	return string(resp.Content)
}

// FallbackAdvice derives deterministic coaching from the gap records
// when no LLM is available. Records arrive priority-sorted from the
// gap model.
func FallbackAdvice(input Input) *Advice {
	advice := &Advice{Source: "fallback"}

	var totalGap float64
	for _, r := range input.Records {
		totalGap += r.Gap
	}

	open := 0
	for _, r := range input.Records {
		if r.Gap <= 0 {
			continue
		}
		open++
		if len(advice.FocusAreas) < 3 {
			advice.FocusAreas = append(advice.FocusAreas, FocusAdvice{
				Skill: r.Skill,
				Recommendation: fmt.Sprintf(
					"Close the %.1f-level gap with project-based practice, then re-take the quiz to verify.", r.Gap),
			})
		}
	}

	switch {
	case open == 0:
		advice.Summary = fmt.Sprintf(
			"You meet every skill requirement for %s. Keep your edge sharp with regular practice and consider stretching toward adjacent skills.", input.Role)
		advice.WeeklyHours = 3
	case totalGap >= 15:
		advice.Summary = fmt.Sprintf(
			"You are %.0f%% ready for %s with %d skills below target. Focus on the highest-priority gaps first; the total gap is substantial, so plan for a sustained effort over 8-12 weeks.",
			input.Readiness, input.Role, open)
		advice.WeeklyHours = 15
	case totalGap >= 8:
		advice.Summary = fmt.Sprintf(
			"You are %.0f%% ready for %s with %d skills below target. A focused 4-8 week push on the top gaps should get you there.",
			input.Readiness, input.Role, open)
		advice.WeeklyHours = 10
	default:
		advice.Summary = fmt.Sprintf(
			"You are %.0f%% ready for %s and close to target. Polish the remaining %d skill(s) over the next 2-4 weeks.",
			input.Readiness, input.Role, open)
		advice.WeeklyHours = 5
	}

	return advice
}

// fallbackChat answers common questions with canned replies when no
// provider is configured.
func fallbackChat(message string) string {
	msg := strings.ToLower(message)

	responses := []struct {
		keyword string
		reply   string
	}{
		{"roadmap", `Here's a general approach:
1. Prioritize skills with the largest gap and highest role weight.
2. Dedicate focused 2-hour daily blocks.
3. Build projects that combine multiple skills.
4. Review weekly with practice quizzes.
Tip: run the roadmap command for your personalized plan.`},
		{"python", `Python is foundational for data and AI roles.
- Start with "Automate the Boring Stuff" for basics.
- Move to "Fluent Python" for intermediate mastery.
- Build 2-3 portfolio projects on GitHub.`},
		{"interview", `Preparation tips:
1. Practice coding problems on LeetCode/HackerRank.
2. Review system-design fundamentals.
3. Prepare STAR-format stories for behavioral rounds.
4. Study the company's tech stack.`},
		{"motivat", `Consistency beats intensity.
- Set small daily goals.
- Track progress with regular quizzes.
- Celebrate each skill-level improvement.`},
	}

	for _, r := range responses {
		if strings.Contains(msg, r.keyword) {
			return r.reply
		}
	}

	return `Here are general tips:
1. Focus on your highest-priority skill gaps first.
2. Use project-based learning to retain knowledge.
3. Reassess every 2 weeks with the quiz.
4. Run the gaps and roadmap commands for details.
Configure an LLM API key for personalized advice.`
}
