package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/advisor"
	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/home"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

// Options carries the wired services the screens need.
type Options struct {
	SnapshotRepo store.SnapshotRepo
	EventRepo    store.EventRepo
	Coach        *advisor.Service
	HasLLM       bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.SnapshotRepo, opts.EventRepo, opts.Coach, opts.HasLLM)
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.router.Pop()
				if m.router.Depth() == 1 {
					// Rebuild home so its stats reflect saved changes.
					return m, m.router.Replace(home.New(m.opts.SnapshotRepo, m.opts.EventRepo, m.opts.Coach, m.opts.HasLLM))
				}
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	role, readiness := m.headerStats()
	header := layout.RenderHeader(title, role, readiness, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStats reads the latest snapshot for the header's role and
// readiness display. Best effort; an unreadable snapshot shows nothing.
func (m AppModel) headerStats() (string, float64) {
	if m.opts.SnapshotRepo == nil {
		return "", 0
	}
	snap, err := m.opts.SnapshotRepo.Latest(context.Background())
	if err != nil || snap == nil || snap.Data.TargetRole == "" {
		return "", 0
	}
	prof := profile.FromSnapshot(&snap.Data)
	role, err := catalog.Get(prof.TargetRole)
	if err != nil {
		return prof.TargetRole, 0
	}
	return prof.TargetRole, gap.Readiness(prof.Levels, role.Requirements)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
