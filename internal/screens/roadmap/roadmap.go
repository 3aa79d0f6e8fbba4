package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/profile"
	plan "github.com/abhisek/skillforge/internal/roadmap"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

const (
	defaultWeeks = 4
	minWeeks     = 1
	maxWeeks     = 12
)

type profileLoadedMsg struct {
	Levels map[string]float64
	Role   catalog.Role
	Err    error
}

// RoadmapScreen renders the week-by-week learning plan. Left/right
// adjusts the number of weeks; the plan regenerates in place.
type RoadmapScreen struct {
	snapRepo store.SnapshotRepo

	levels    map[string]float64
	role      catalog.Role
	weeks     int
	plan      plan.Plan
	showDays  bool
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates a new RoadmapScreen.
func New(snapRepo store.SnapshotRepo) *RoadmapScreen {
	return &RoadmapScreen{snapRepo: snapRepo, weeks: defaultWeeks}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof := profile.New()
		if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}
		if prof.TargetRole == "" {
			return profileLoadedMsg{Err: fmt.Errorf("no target role set — pick one first")}
		}
		role, err := catalog.Get(prof.TargetRole)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		return profileLoadedMsg{Levels: prof.Levels, Role: role}
	}
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Weeks"},
		{Key: "↑↓", Description: "Select week"},
		{Key: "D", Description: "Daily targets"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.levels = msg.Levels
			s.role = msg.Role
			s.regenerate()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			if s.weeks > minWeeks {
				s.weeks--
				s.regenerate()
			}
		case "right", "l":
			if s.weeks < maxWeeks {
				s.weeks++
				s.regenerate()
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.plan.Weeks)-1 {
				s.selected++
			}
		case "d":
			s.showDays = !s.showDays
		}
	}
	return s, nil
}

func (s *RoadmapScreen) regenerate() {
	s.plan = plan.Generate(s.levels, s.role.Requirements, s.weeks)
	if s.selected >= len(s.plan.Weeks) {
		s.selected = 0
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("%s\n\nPress any key to go back.", s.errMsg)))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Building roadmap..."))
	}
	if s.plan.Complete {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Correct.Render(s.plan.Status))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(
		fmt.Sprintf("%d-week roadmap for %s", s.weeks, s.role.Name)) + "\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("%d skills to close", s.plan.TotalSkills)) + "\n\n")

	for i, week := range s.plan.Weeks {
		header := fmt.Sprintf("Week %d", week.Week)
		headerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		if i == s.selected {
			header = "▸ " + header
			headerStyle = headerStyle.Foreground(theme.Primary)
		} else {
			header = "  " + header
		}
		b.WriteString(headerStyle.Render(header) + "\n")

		for _, fa := range week.FocusAreas {
			line := fmt.Sprintf("    %-22s %.1f → %.1f   %-12s %s priority",
				fa.Skill, fa.CurrentLevel, fa.TargetLevel, fa.Difficulty, fa.Priority)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if fa.Priority == plan.PriorityHigh {
				style = style.Foreground(theme.Error)
			}
			b.WriteString(style.Render(line) + "\n")
		}

		if s.showDays && i == s.selected {
			for _, target := range week.DailyTargets {
				b.WriteString(theme.Hint.Render("      "+target) + "\n")
			}
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
