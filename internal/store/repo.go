package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full profile state at a point in time.
type SnapshotData struct {
	Version           int                `json:"version"`
	TargetRole        string             `json:"target_role"`
	Levels            map[string]float64 `json:"levels"`
	QuizzesTaken      int                `json:"quizzes_taken"`
	QuestionsAnswered int                `json:"questions_answered"`
}

// Snapshot represents a point-in-time capture of profile state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AssessmentEventData captures a gap analysis run.
type AssessmentEventData struct {
	Role      string
	Readiness float64
	GapCount  int
	Source    string // self, resume, or quiz
}

// QuizEventData captures a quiz lifecycle event.
type QuizEventData struct {
	QuizID          string
	Action          string // start or finish
	Skills          []string
	QuestionsServed int
	CorrectAnswers  int
}

// AnswerEventData captures a single answered quiz question.
type AnswerEventData struct {
	QuizID        string
	Skill         string
	Difficulty    string
	QuestionText  string
	SelectedIndex int // -1 if skipped
	CorrectIndex  int
	Correct       bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM spend for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM spend for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizStats summarizes the persisted quiz history.
type QuizStats struct {
	QuizzesFinished   int
	QuestionsAnswered int
	CorrectAnswers    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAssessment records a gap analysis run.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendQuizEvent records a quiz start or finish.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillAccuracy returns the all-time answer accuracy for a skill,
	// 0 when the skill has never been quizzed.
	SkillAccuracy(ctx context.Context, skill string) (float64, error)

	// Stats summarizes finished quizzes and answers.
	Stats(ctx context.Context) (QuizStats, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM requests per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM requests per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
