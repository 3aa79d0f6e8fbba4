// Package advisor produces LLM-backed career coaching from gap analysis
// results, with deterministic fallback advice when no provider is
// configured or the call fails.
package advisor

import "github.com/abhisek/skillforge/internal/gap"

// Input is the assessment context the advice is generated from.
type Input struct {
	Role      string
	Readiness float64
	Records   []gap.Record
}

// FocusAdvice is a per-skill coaching recommendation.
type FocusAdvice struct {
	Skill          string `json:"skill"`
	Recommendation string `json:"recommendation"`
}

// Advice is the structured coaching output.
type Advice struct {
	Summary     string        `json:"summary"`
	FocusAreas  []FocusAdvice `json:"focus_areas"`
	WeeklyHours int           `json:"weekly_hours"`

	// Source is "llm" or "fallback".
	Source string `json:"-"`
}

// Config holds advice generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for advice generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}
