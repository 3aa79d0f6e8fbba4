package profile

import (
	"testing"

	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/store"
)

func TestSetLevelClamps(t *testing.T) {
	p := New()
	p.SetLevel("Python", 12)
	if l, _ := p.Level("Python"); l != 10 {
		t.Errorf("level = %v, want clamp to 10", l)
	}
	p.SetLevel("SQL", -3)
	if l, _ := p.Level("SQL"); l != 0 {
		t.Errorf("level = %v, want clamp to 0", l)
	}
}

func TestApplyQuizResultsFirstScore(t *testing.T) {
	p := New()
	p.ApplyQuizResults(map[string]quiz.SkillResult{
		"Python": {Correct: 3, Total: 3, Score: 7.5},
	})
	if l, _ := p.Level("Python"); l != 7.5 {
		t.Errorf("first quiz score should become the level, got %v", l)
	}
	if p.QuizzesTaken != 1 || p.QuestionsAnswered != 3 {
		t.Errorf("counters = %d/%d, want 1/3", p.QuizzesTaken, p.QuestionsAnswered)
	}
}

func TestApplyQuizResultsBlends(t *testing.T) {
	p := New()
	p.SetLevel("Python", 4)
	p.ApplyQuizResults(map[string]quiz.SkillResult{
		"Python": {Correct: 2, Total: 2, Score: 7},
	})
	if l, _ := p.Level("Python"); l != 5.5 {
		t.Errorf("blended level = %v, want 5.5", l)
	}
}

func TestApplyQuizResultsEmpty(t *testing.T) {
	p := New()
	p.ApplyQuizResults(nil)
	if p.QuizzesTaken != 0 {
		t.Errorf("empty results must not count as a quiz, got %d", p.QuizzesTaken)
	}
}

func TestMergeExtractedOnlyFillsUnset(t *testing.T) {
	p := New()
	p.SetLevel("Python", 8)
	p.MergeExtracted(map[string]float64{"Python": 4, "SQL": 5})

	if l, _ := p.Level("Python"); l != 8 {
		t.Errorf("explicit rating overwritten by extraction: %v", l)
	}
	if l, _ := p.Level("SQL"); l != 5 {
		t.Errorf("SQL = %v, want seeded 5", l)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := New()
	p.SetTargetRole("Data Scientist")
	p.SetLevel("Python", 6)
	p.QuizzesTaken = 2
	p.QuestionsAnswered = 10

	got := FromSnapshot(ptr(p.Snapshot()))
	if got.TargetRole != "Data Scientist" {
		t.Errorf("TargetRole = %q", got.TargetRole)
	}
	if l, _ := got.Level("Python"); l != 6 {
		t.Errorf("Python = %v, want 6", l)
	}
	if got.QuizzesTaken != 2 || got.QuestionsAnswered != 10 {
		t.Errorf("counters = %d/%d", got.QuizzesTaken, got.QuestionsAnswered)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	p := New()
	p.SetLevel("Git", 3)
	snap := p.Snapshot()
	snap.Levels["Git"] = 9
	if l, _ := p.Level("Git"); l != 3 {
		t.Errorf("snapshot mutation leaked into the profile: %v", l)
	}
}

func TestFromSnapshotNil(t *testing.T) {
	p := FromSnapshot(nil)
	if p == nil || p.Levels == nil {
		t.Fatal("nil snapshot should yield a usable fresh profile")
	}
}

func ptr(d store.SnapshotData) *store.SnapshotData { return &d }
