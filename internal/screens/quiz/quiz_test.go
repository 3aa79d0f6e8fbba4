package quiz

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/profile"
	engine "github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents   []store.QuizEventData
	answerEvents []store.AnswerEventData
	assessments  []store.AssessmentEventData
}

func (m *mockEventRepo) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	m.assessments = append(m.assessments, data)
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) SkillAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) Stats(_ context.Context) (store.QuizStats, error) {
	return store.QuizStats{}, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testItems() []engine.Item {
	opts := []string{"a", "b", "c", "d"}
	return []engine.Item{
		{ID: 0, Skill: "Python", Difficulty: questionbank.Beginner, Text: "q1", Options: opts, CorrectIndex: 0},
		{ID: 1, Skill: "Python", Difficulty: questionbank.Intermediate, Text: "q2", Options: opts, CorrectIndex: 2},
	}
}

func testQuizScreen() (*QuizScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(snapRepo, eventRepo)

	s.Update(quizReadyMsg{
		Profile: profile.New(),
		Items:   testItems(),
		QuizID:  "quiz-test",
	})
	return s, eventRepo, snapRepo
}

func TestNumberKeyAnswersAndRecordsEvent(t *testing.T) {
	s, events, _ := testQuizScreen()

	s.Update(keyPress('1'))

	if len(events.answerEvents) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if ev.SelectedIndex != 0 || !ev.Correct {
		t.Errorf("expected correct answer at index 0, got index %d correct %v", ev.SelectedIndex, ev.Correct)
	}
	if ev.QuizID != "quiz-test" || ev.Skill != "Python" {
		t.Errorf("unexpected event metadata: %+v", ev)
	}

	if !s.showingFeedback {
		t.Error("expected feedback after answering")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected correct feedback in view")
	}
}

func TestSkipRecordsUnansweredEvent(t *testing.T) {
	s, events, _ := testQuizScreen()

	s.Update(keyPress('s'))

	if len(events.answerEvents) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if ev.SelectedIndex != -1 || ev.Correct {
		t.Errorf("expected skipped event, got index %d correct %v", ev.SelectedIndex, ev.Correct)
	}
	if len(s.answers) != 0 {
		t.Error("skipped question must not enter the answers map")
	}
}

func TestFinishPersistsSnapshotAndEvents(t *testing.T) {
	s, events, snaps := testQuizScreen()

	// Answer both questions correctly, dismissing feedback in between.
	s.Update(keyPress('1'))
	s.Update(keyPress(' '))
	s.Update(keyPress('3'))
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected finish command after the last question")
	}

	msg := cmd()
	fin, ok := msg.(quizFinishedMsg)
	if !ok {
		t.Fatalf("expected quizFinishedMsg, got %T", msg)
	}
	if fin.Err != nil {
		t.Fatalf("finish failed: %v", fin.Err)
	}

	res, ok := fin.Results["Python"]
	if !ok {
		t.Fatal("expected a Python result")
	}
	if res.Correct != 2 || res.Total != 2 {
		t.Errorf("expected 2/2 correct, got %d/%d", res.Correct, res.Total)
	}

	if len(snaps.snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps.snapshots))
	}
	if _, ok := snaps.snapshots[0].Data.Levels["Python"]; !ok {
		t.Error("snapshot should carry the blended Python level")
	}

	if len(events.quizEvents) != 1 {
		t.Fatalf("expected finish quiz event, got %d", len(events.quizEvents))
	}
	finish := events.quizEvents[0]
	if finish.Action != "finish" || finish.QuestionsServed != 2 || finish.CorrectAnswers != 2 {
		t.Errorf("unexpected finish event: %+v", finish)
	}

	s.Update(fin)
	view := s.View(80, 24)
	if !strings.Contains(view, "Quiz complete!") {
		t.Error("expected results view after finishing")
	}
}

func TestStartErrorShowsMessageAndPopsOnKey(t *testing.T) {
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(snapRepo, eventRepo)

	s.Update(quizReadyMsg{Err: fmt.Errorf("no skills to quiz")})

	view := s.View(80, 24)
	if !strings.Contains(view, "no skills to quiz") {
		t.Error("expected error message in view")
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected pop command on keypress after error")
	}
}
