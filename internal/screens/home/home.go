package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/advisor"
	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/assess"
	"github.com/abhisek/skillforge/internal/screens/gaps"
	quizscreen "github.com/abhisek/skillforge/internal/screens/quiz"
	"github.com/abhisek/skillforge/internal/screens/roadmap"
	"github.com/abhisek/skillforge/internal/screens/roles"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	targetRole string
	readiness  float64
	skillCount int
	quizzes    int
	hasLLM     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The advisor service may be backed by a
// nil provider; the coach screens then serve fallback advice.
func New(snapRepo store.SnapshotRepo, eventRepo store.EventRepo, coach *advisor.Service, hasLLM bool) *HomeScreen {
	// Load snapshot for the header stats.
	var prof *profile.Profile
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}
	}
	if prof == nil {
		prof = profile.New()
	}

	h := &HomeScreen{
		targetRole: prof.TargetRole,
		skillCount: len(prof.Levels),
		quizzes:    prof.QuizzesTaken,
		hasLLM:     hasLLM,
	}
	if prof.TargetRole != "" {
		h.readiness = readinessFor(prof)
	}

	items := []components.MenuItem{
		{Label: "SELECT TARGET ROLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roles.New(snapRepo)}
			}
		}},
		{Label: "SELF-ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assess.New(snapRepo, eventRepo)}
			}
		}},
		{Label: "TAKE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(snapRepo, eventRepo)}
			}
		}},
		{Label: "GAP REPORT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gaps.New(snapRepo, coach)}
			}
		}},
		{Label: "LEARNING ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmap.New(snapRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// readinessFor computes the current readiness against the profile's
// target role, 0 when the role is unknown.
func readinessFor(prof *profile.Profile) float64 {
	role, err := catalog.Get(prof.TargetRole)
	if err != nil {
		return 0
	}
	return gap.Readiness(prof.Levels, role.Requirements)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("S K I L L F O R G E") + "\n" +
		theme.Subtitle.Render("AI-powered skill assessment & career coaching")
	sections = append(sections, title)

	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	if !h.hasLLM {
		sections = append(sections, theme.Hint.Render(
			"No LLM configured — coaching uses built-in advice. Set SKILLFORGE_LLM_PROVIDER to enable AI."))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	role := h.targetRole
	if role == "" {
		role = "not set"
	}

	parts := []string{
		fmt.Sprintf("Role: %s", role),
		fmt.Sprintf("Skills rated: %d", h.skillCount),
		fmt.Sprintf("Quizzes: %d", h.quizzes),
	}
	if h.targetRole != "" {
		parts = append(parts, fmt.Sprintf("Readiness: %.1f%%", h.readiness))
	}

	line := strings.Join(parts, "   |   ")
	return theme.Card.Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
