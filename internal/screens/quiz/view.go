package quiz

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("%s\n\nPress any key to go back.", s.errMsg)))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Preparing quiz..."))
	}
	if s.finished {
		return s.renderResults(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	item := s.items[s.index]

	var b strings.Builder

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Skill: %s", item.Skill)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   [%s]   Q %d/%d   correct %d",
				item.Difficulty, s.index+1, len(s.items), s.correct))
	b.WriteString(info + "\n\n")

	bar := components.NewProgressBar("", float64(s.index)/float64(len(s.items)), false, 40)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(s.choice.View())

	if s.showingFeedback {
		b.WriteString("\n")
		switch {
		case s.choice.Skipped():
			b.WriteString(theme.Hint.Render("Skipped.  Press any key to continue."))
		case s.choice.IsCorrect():
			b.WriteString(theme.Correct.Render("Correct!") +
				theme.Hint.Render("  Press any key to continue."))
		default:
			b.WriteString(theme.Incorrect.Render("Not quite.") +
				theme.Hint.Render("  Press any key to continue."))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderResults(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete!") + "\n\n")

	skills := make([]string, 0, len(s.results))
	for skill := range s.results {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	for _, skill := range skills {
		res := s.results[skill]
		scoreStyle := theme.Correct
		if res.Score < 5 {
			scoreStyle = theme.Incorrect
		}
		line := fmt.Sprintf("%-22s %d/%d correct   top tier %-12s score ",
			skill, res.Correct, res.Total, res.MaxDifficulty)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line) +
			scoreStyle.Render(fmt.Sprintf("%.1f", res.Score)) + "\n")
	}

	b.WriteString("\n" + theme.Body.Render(
		"Measured scores were blended into your skill levels."))
	if s.readiness > 0 {
		b.WriteString("\n" + theme.Body.Render(
			fmt.Sprintf("Role readiness is now %.1f%%.", s.readiness)))
	}
	b.WriteString("\n\n" + theme.Hint.Render("Press Esc to return."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
