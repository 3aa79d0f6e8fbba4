package roles

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

type roleSavedMsg struct {
	Err error
}

// RolesScreen lets the user pick a target role from the catalog.
type RolesScreen struct {
	snapRepo store.SnapshotRepo
	roles    []catalog.Role
	selected int
	errMsg   string
}

var _ screen.Screen = (*RolesScreen)(nil)
var _ screen.KeyHintProvider = (*RolesScreen)(nil)

// New creates a new RolesScreen.
func New(snapRepo store.SnapshotRepo) *RolesScreen {
	return &RolesScreen{
		snapRepo: snapRepo,
		roles:    catalog.Roles(),
	}
}

func (s *RolesScreen) Init() tea.Cmd {
	return nil
}

func (s *RolesScreen) Title() string {
	return "Target Role"
}

func (s *RolesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RolesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roleSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.roles)-1 {
				s.selected++
			}
		case "enter":
			return s, s.saveRole(s.roles[s.selected].Name)
		}
	}
	return s, nil
}

// saveRole sets the target role on the profile and persists a snapshot.
func (s *RolesScreen) saveRole(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof := profile.New()
		if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}
		prof.SetTargetRole(name)

		err := s.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      prof.Snapshot(),
		})
		return roleSavedMsg{Err: err}
	}
}

func (s *RolesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose your target role") + "\n\n")

	for i, role := range s.roles {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s", prefix, role.Name)) + "\n")

		if i == s.selected {
			skills := role.RequiredSkills()
			b.WriteString(theme.Hint.Render(
				fmt.Sprintf("      %d required skills: %s", len(skills), strings.Join(skills, ", "))) + "\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
