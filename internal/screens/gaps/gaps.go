package gaps

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/advisor"
	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

type reportMsg struct {
	Role      string
	Readiness float64
	Records   []gap.Record
	Strengths []gap.Strength
	Err       error
}

type adviceMsg struct {
	Advice *advisor.Advice
}

// GapsScreen shows the gap analysis for the target role, with optional
// AI coaching on demand.
type GapsScreen struct {
	snapRepo store.SnapshotRepo
	coach    *advisor.Service

	role      string
	readiness float64
	records   []gap.Record
	strengths []gap.Strength
	advice    *advisor.Advice
	advising  bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*GapsScreen)(nil)
var _ screen.KeyHintProvider = (*GapsScreen)(nil)

// New creates a new GapsScreen.
func New(snapRepo store.SnapshotRepo, coach *advisor.Service) *GapsScreen {
	return &GapsScreen{snapRepo: snapRepo, coach: coach}
}

func (s *GapsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof := profile.New()
		if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}
		if prof.TargetRole == "" {
			return reportMsg{Err: fmt.Errorf("no target role set — pick one first")}
		}
		role, err := catalog.Get(prof.TargetRole)
		if err != nil {
			return reportMsg{Err: err}
		}

		return reportMsg{
			Role:      role.Name,
			Readiness: gap.Readiness(prof.Levels, role.Requirements),
			Records:   gap.ComputeGaps(prof.Levels, role.Requirements),
			Strengths: gap.Strengths(prof.Levels, role.Requirements),
		}
	}
}

func (s *GapsScreen) Title() string {
	return "Gap Report"
}

func (s *GapsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if s.loaded && s.errMsg == "" && s.advice == nil && !s.advising {
		hints = append([]layout.KeyHint{{Key: "C", Description: "Coach me"}}, hints...)
	}
	return hints
}

func (s *GapsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.role = msg.Role
			s.readiness = msg.Readiness
			s.records = msg.Records
			s.strengths = msg.Strengths
		}
		s.loaded = true
		return s, nil

	case adviceMsg:
		s.advising = false
		s.advice = msg.Advice
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c", "C":
			if s.loaded && s.errMsg == "" && !s.advising && s.advice == nil {
				s.advising = true
				return s, s.requestAdvice()
			}
		default:
			if s.errMsg != "" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return s, nil
}

func (s *GapsScreen) requestAdvice() tea.Cmd {
	input := advisor.Input{Role: s.role, Readiness: s.readiness, Records: s.records}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		return adviceMsg{Advice: s.coach.Generate(ctx, input)}
	}
}

func (s *GapsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("%s\n\nPress any key to go back.", s.errMsg)))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Analyzing..."))
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Readiness for %s", s.role)) + "\n\n")
	bar := components.NewProgressBar("", s.readiness/100, true, 46)
	b.WriteString(bar.View() + "\n\n")

	for _, r := range s.records {
		style := theme.Correct
		marker := "✓"
		if r.Gap > 0 {
			marker = "▲"
			if r.Gap >= 3 {
				style = theme.Incorrect
			} else {
				style = lipgloss.NewStyle().Foreground(theme.Warning)
			}
		}
		line := fmt.Sprintf("%s %-22s %4.1f / %-4.1f  gap %4.1f  priority %4.1f",
			marker, r.Skill, r.Current, r.Required, r.Gap, r.PriorityScore)
		b.WriteString(style.Render(line) + "\n")
	}

	if len(s.strengths) > 0 {
		names := make([]string, 0, len(s.strengths))
		for _, st := range s.strengths {
			names = append(names, st.Skill)
		}
		b.WriteString("\n" + theme.Hint.Render("Strengths: "+strings.Join(names, ", ")) + "\n")
	}

	if s.advising {
		b.WriteString("\n" + theme.Hint.Render("Asking the coach..."))
	}
	if s.advice != nil {
		b.WriteString("\n" + s.renderAdvice(width))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *GapsScreen) renderAdvice(width int) string {
	var b strings.Builder

	label := "Coach"
	if s.advice.Source == "fallback" {
		label = "Coach (offline)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label) + "\n")
	b.WriteString(theme.Body.Render(s.advice.Summary) + "\n")

	for _, f := range s.advice.FocusAreas {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  • %s: %s", f.Skill, f.Recommendation)) + "\n")
	}
	if s.advice.WeeklyHours > 0 {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("Suggested effort: %d hours/week", s.advice.WeeklyHours)) + "\n")
	}

	maxWidth := width - 8
	if maxWidth < 40 {
		maxWidth = 40
	}
	return theme.Card.Width(maxWidth).Render(b.String())
}
