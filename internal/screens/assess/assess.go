package assess

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

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

type loadedMsg struct {
	Profile *profile.Profile
	Skills  []string
	Err     error
}

type savedMsg struct {
	Readiness float64
	Err       error
}

// AssessScreen walks the user through rating each required skill of the
// target role from 0 to 10.
type AssessScreen struct {
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo

	prof    *profile.Profile
	skills  []string
	index   int
	input   components.TextInput
	flash   string
	done    bool
	ready   float64
	errMsg  string
	loaded  bool
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates a new AssessScreen.
func New(snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *AssessScreen {
	return &AssessScreen{
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		input:     components.NewTextInput("0-10", true, 4),
	}
}

func (s *AssessScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.input.Init())
}

func (s *AssessScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof := profile.New()
		if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}

		if prof.TargetRole == "" {
			return loadedMsg{Err: fmt.Errorf("no target role set — pick one first")}
		}
		role, err := catalog.Get(prof.TargetRole)
		if err != nil {
			return loadedMsg{Err: err}
		}

		return loadedMsg{Profile: prof, Skills: role.RequiredSkills()}
	}
}

func (s *AssessScreen) Title() string {
	return "Self-Assessment"
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rate"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.prof = msg.Profile
			s.skills = msg.Skills
		}
		s.loaded = true
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.ready = msg.Readiness
		s.done = true
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" || s.done {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if !s.loaded {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.submitRating()
		}
	}

	if s.loaded && !s.done && s.errMsg == "" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) submitRating() (screen.Screen, tea.Cmd) {
	level, err := s.input.FloatValue()
	if err != nil || level < 0 || level > 10 {
		s.flash = "Enter a number between 0 and 10"
		return s, nil
	}
	s.flash = ""

	s.prof.SetLevel(s.skills[s.index], level)
	s.index++
	s.input.Reset()

	if s.index < len(s.skills) {
		return s, nil
	}
	return s, s.save()
}

// save persists the rated profile and records the assessment run.
func (s *AssessScreen) save() tea.Cmd {
	prof := s.prof
	return func() tea.Msg {
		ctx := context.Background()

		if err := s.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      prof.Snapshot(),
		}); err != nil {
			return savedMsg{Err: err}
		}

		role, err := catalog.Get(prof.TargetRole)
		if err != nil {
			return savedMsg{Err: err}
		}
		readiness := gap.Readiness(prof.Levels, role.Requirements)

		gapCount := 0
		for _, r := range gap.ComputeGaps(prof.Levels, role.Requirements) {
			if r.Gap > 0 {
				gapCount++
			}
		}

		_ = s.eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
			Role:      prof.TargetRole,
			Readiness: readiness,
			GapCount:  gapCount,
			Source:    "self",
		})

		return savedMsg{Readiness: readiness}
	}
}

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("Error: %s\n\nPress any key to go back.", s.errMsg)))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if s.done {
		msg := theme.Title.Render("Assessment saved!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Readiness for %s: %.1f%%", s.prof.TargetRole, s.ready)) + "\n\n" +
			theme.Hint.Render("Press Esc to return, then open the Gap Report.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	skill := s.skills[s.index]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Rating skills for %s  (%d/%d)", s.prof.TargetRole, s.index+1, len(s.skills))) + "\n\n")

	bar := components.NewProgressBar("", float64(s.index)/float64(len(s.skills)), false, 40)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("How would you rate your %s? (0-10)", skill)) + "\n")

	if current, ok := s.prof.Level(skill); ok {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("current: %.1f", current)) + "\n")
	}
	b.WriteString("\n" + s.input.View() + "\n")

	if s.flash != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Warning).Render(s.flash))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
