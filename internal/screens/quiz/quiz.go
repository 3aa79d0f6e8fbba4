package quiz

import (
	"context"
	"fmt"
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	engine "github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"

	"github.com/google/uuid"
)

// questionsPerSkill is how many questions the adaptive generator draws
// for each skill in one quiz run.
const questionsPerSkill = 3

type quizReadyMsg struct {
	Profile *profile.Profile
	Items   []engine.Item
	QuizID  string
	Err     error
}

type quizFinishedMsg struct {
	Results   map[string]engine.SkillResult
	Readiness float64
	Err       error
}

// QuizScreen runs an adaptive quiz and folds the measured scores back
// into the profile.
type QuizScreen struct {
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo

	prof    *profile.Profile
	quizID  string
	items   []engine.Item
	index   int
	answers map[int]int
	choice  components.MultiChoice
	correct int

	showingFeedback bool
	finished        bool
	results         map[string]engine.SkillResult
	readiness       float64
	errMsg          string
	loaded          bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		answers:   make(map[int]int),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startQuiz()
}

// startQuiz loads the profile, generates the quiz, and records the
// start event. Quiz skills are the target role's requirements, or every
// rated skill when no role is set.
func (s *QuizScreen) startQuiz() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof := profile.New()
		if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
			prof = profile.FromSnapshot(&snap.Data)
		}

		skills := quizSkills(prof)
		if len(skills) == 0 {
			return quizReadyMsg{Err: fmt.Errorf("no skills to quiz — pick a target role or rate some skills first")}
		}

		gen := engine.NewSeededGenerator(uint64(time.Now().UnixNano()))
		items := gen.Generate(skills, prof.Levels, questionsPerSkill)
		if len(items) == 0 {
			return quizReadyMsg{Err: fmt.Errorf("no quiz questions available for your skills")}
		}

		quizID := uuid.New().String()
		_ = s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
			QuizID: quizID,
			Action: "start",
			Skills: skills,
		})

		return quizReadyMsg{Profile: prof, Items: items, QuizID: quizID}
	}
}

func quizSkills(prof *profile.Profile) []string {
	if prof.TargetRole != "" {
		if role, err := catalog.Get(prof.TargetRole); err == nil {
			return role.RequiredSkills()
		}
	}
	skills := make([]string, 0, len(prof.Levels))
	for skill := range prof.Levels {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.finished || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.showingFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "Abort"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.prof = msg.Profile
		s.items = msg.Items
		s.quizID = msg.QuizID
		s.loaded = true
		s.setupQuestion()
		return s, nil

	case quizFinishedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.results = msg.Results
		s.readiness = msg.Readiness
		s.finished = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.finished {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded {
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		s.index++
		if s.index >= len(s.items) {
			return s, s.finishQuiz()
		}
		s.setupQuestion()
		return s, nil
	}

	// Number keys select and submit directly.
	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.choice.Options) {
			s.choice.Selected = idx
			s.choice.Submitted = true
			s.choice.ChosenIndex = idx
			return s.recordAnswer()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.recordAnswer()
	}
	return s, cmd
}

func (s *QuizScreen) setupQuestion() {
	item := s.items[s.index]
	s.choice = components.NewMultiChoice(item.Text, item.Options, item.CorrectIndex)
}

// recordAnswer persists the answer event and shows feedback.
func (s *QuizScreen) recordAnswer() (screen.Screen, tea.Cmd) {
	item := s.items[s.index]

	if !s.choice.Skipped() {
		s.answers[item.ID] = s.choice.ChosenIndex
	}
	if s.choice.IsCorrect() {
		s.correct++
	}

	_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		QuizID:        s.quizID,
		Skill:         item.Skill,
		Difficulty:    string(item.Difficulty),
		QuestionText:  item.Text,
		SelectedIndex: s.choice.ChosenIndex,
		CorrectIndex:  item.CorrectIndex,
		Correct:       s.choice.IsCorrect(),
	})

	s.showingFeedback = true
	return s, nil
}

// finishQuiz scores the quiz, folds results into the profile, and
// persists the snapshot plus finish events.
func (s *QuizScreen) finishQuiz() tea.Cmd {
	prof := s.prof
	items := s.items
	answers := s.answers
	quizID := s.quizID
	correct := s.correct

	return func() tea.Msg {
		ctx := context.Background()

		results := engine.Score(items, answers)
		prof.ApplyQuizResults(results)

		if err := s.snapRepo.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      prof.Snapshot(),
		}); err != nil {
			return quizFinishedMsg{Err: err}
		}

		skills := make([]string, 0, len(results))
		for skill := range results {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		_ = s.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
			QuizID:          quizID,
			Action:          "finish",
			Skills:          skills,
			QuestionsServed: len(items),
			CorrectAnswers:  correct,
		})

		var readiness float64
		if prof.TargetRole != "" {
			if role, err := catalog.Get(prof.TargetRole); err == nil {
				readiness = gap.Readiness(prof.Levels, role.Requirements)
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
					Source:    "quiz",
				})
			}
		}

		return quizFinishedMsg{Results: results, Readiness: readiness}
	}
}
