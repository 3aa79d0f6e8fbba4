package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:    SnapshotVersion,
			TargetRole: "Data Scientist",
			Levels:     map[string]float64{"Python": 6.5},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TargetRole != "Data Scientist" {
		t.Errorf("target role = %q", snap.Data.TargetRole)
	}
	if snap.Data.Levels["Python"] != 6.5 {
		t.Errorf("Python level = %v, want 6.5", snap.Data.Levels["Python"])
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQuizAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID: "q1",
		Action: "start",
		Skills: []string{"Python", "SQL"},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []AnswerEventData{
		{QuizID: "q1", Skill: "Python", Difficulty: "beginner", QuestionText: "x", SelectedIndex: 1, CorrectIndex: 1, Correct: true},
		{QuizID: "q1", Skill: "Python", Difficulty: "intermediate", QuestionText: "y", SelectedIndex: 0, CorrectIndex: 2, Correct: false},
		{QuizID: "q1", Skill: "SQL", Difficulty: "beginner", QuestionText: "z", SelectedIndex: 3, CorrectIndex: 3, Correct: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	err = repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID:          "q1",
		Action:          "finish",
		QuestionsServed: 3,
		CorrectAnswers:  2,
	})
	if err != nil {
		t.Fatalf("append finish: %v", err)
	}

	acc, err := repo.SkillAccuracy(ctx, "Python")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("Python accuracy = %v, want 0.5", acc)
	}

	acc, err = repo.SkillAccuracy(ctx, "Docker")
	if err != nil {
		t.Fatalf("skill accuracy (unseen): %v", err)
	}
	if acc != 0 {
		t.Errorf("unseen skill accuracy = %v, want 0", acc)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.QuizzesFinished != 1 || stats.QuestionsAnswered != 3 || stats.CorrectAnswers != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestAssessmentEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessment(ctx, AssessmentEventData{
		Role:      "ML Engineer",
		Readiness: 62.5,
		GapCount:  4,
		Source:    "self",
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	count, err := s.Client().AssessmentEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("assessment events = %d, want 1", count)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "coaching", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "coaching", InputTokens: 120, OutputTokens: 60, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "chat", InputTokens: 10, OutputTokens: 5, Success: false, ErrorMessage: "rate limited"},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purposes, want 2", len(usage))
	}
	// Sorted by purpose: chat, coaching.
	if usage[0].Purpose != "chat" || usage[0].Calls != 1 {
		t.Errorf("usage[0] = %+v", usage[0])
	}
	if usage[1].Purpose != "coaching" || usage[1].InputTokens != 220 || usage[1].OutputTokens != 110 {
		t.Errorf("usage[1] = %+v", usage[1])
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2", len(models))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "chat" {
		t.Errorf("events[0].Purpose = %q, want chat", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.ErrorMessage != "rate limited" {
		t.Errorf("got = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
