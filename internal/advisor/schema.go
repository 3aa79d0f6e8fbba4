package advisor

import "github.com/abhisek/skillforge/internal/llm"

// AdviceSchema defines the JSON schema for coaching advice generation.
var AdviceSchema = &llm.Schema{
	Name:        "coaching-advice",
	Description: "Structured career coaching advice for closing skill gaps",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence assessment of the user's readiness and priorities",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"description": "2-4 skills to focus on, highest priority first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type":        "string",
							"description": "Skill name exactly as given in the gap list",
						},
						"recommendation": map[string]any{
							"type":        "string",
							"description": "Specific, actionable advice for this skill (1-2 sentences)",
						},
					},
					"required":             []any{"skill", "recommendation"},
					"additionalProperties": false,
				},
			},
			"weekly_hours": map[string]any{
				"type":        "integer",
				"description": "Recommended weekly study hours (1-40)",
				"minimum":     1,
				"maximum":     40,
			},
		},
		"required":             []any{"summary", "focus_areas", "weekly_hours"},
		"additionalProperties": false,
	},
}
