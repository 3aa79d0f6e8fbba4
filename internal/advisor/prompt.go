package advisor

import (
	"fmt"
	"strings"
)

const adviceSystemPrompt = `You are SkillForge AI, a concise, expert career and skills coach. A user has run a skill gap analysis against a target role and needs actionable coaching. Give specific, practical advice grounded in the numbers provided.`

const chatSystemPrompt = `You are SkillForge AI, a concise, expert career and skills coach. Give actionable, specific advice. Keep answers under 200 words.`

func buildAdviceUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Target role: %s\n", input.Role))
	b.WriteString(fmt.Sprintf("Overall readiness: %.1f%%\n", input.Readiness))

	b.WriteString("\nSkill gaps (priority order):\n")
	open := 0
	for _, r := range input.Records {
		if r.Gap <= 0 {
			continue
		}
		open++
		b.WriteString(fmt.Sprintf("- %s: level %.1f of %.1f required (gap %.1f, priority %.1f)\n",
			r.Skill, r.Current, r.Required, r.Gap, r.PriorityScore))
	}
	if open == 0 {
		b.WriteString("None — all requirements met.\n")
	}

	b.WriteString(`
Instructions:
1. Summarize the user's readiness for the role in 3-5 sentences, naming the biggest blockers.
2. Pick the 2-4 highest-priority gap skills and give one specific recommendation each (a resource type, project idea, or study approach).
3. Suggest realistic weekly study hours given the total gap.
Use the skill names exactly as listed.`)

	return b.String()
}
