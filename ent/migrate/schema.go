// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "selected_index", Type: field.TypeInt},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_skill",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "role", Type: field.TypeString},
		{Name: "readiness", Type: field.TypeFloat64},
		{Name: "gap_count", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_role",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_source",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_action",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AssessmentEventsTable,
		LlmRequestEventsTable,
		QuizEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
