// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillforge/ent/answerevent"
	"github.com/abhisek/skillforge/ent/assessmentevent"
	"github.com/abhisek/skillforge/ent/llmrequestevent"
	"github.com/abhisek/skillforge/ent/quizevent"
	"github.com/abhisek/skillforge/ent/schema"
	"github.com/abhisek/skillforge/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuizID is the schema descriptor for quiz_id field.
	answereventDescQuizID := answereventFields[0].Descriptor()
	// answerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	answerevent.QuizIDValidator = answereventDescQuizID.Validators[0].(func(string) error)
	// answereventDescSkill is the schema descriptor for skill field.
	answereventDescSkill := answereventFields[1].Descriptor()
	// answerevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	answerevent.SkillValidator = answereventDescSkill.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[2].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescRole is the schema descriptor for role field.
	assessmenteventDescRole := assessmenteventFields[0].Descriptor()
	// assessmentevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	assessmentevent.RoleValidator = assessmenteventDescRole.Validators[0].(func(string) error)
	// assessmenteventDescGapCount is the schema descriptor for gap_count field.
	assessmenteventDescGapCount := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultGapCount holds the default value on creation for the gap_count field.
	assessmentevent.DefaultGapCount = assessmenteventDescGapCount.Default.(int)
	// assessmenteventDescSource is the schema descriptor for source field.
	assessmenteventDescSource := assessmenteventFields[3].Descriptor()
	// assessmentevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	assessmentevent.SourceValidator = assessmenteventDescSource.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescAction is the schema descriptor for action field.
	quizeventDescAction := quizeventFields[1].Descriptor()
	// quizevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizevent.ActionValidator = quizeventDescAction.Validators[0].(func(string) error)
	// quizeventDescQuestionsServed is the schema descriptor for questions_served field.
	quizeventDescQuestionsServed := quizeventFields[3].Descriptor()
	// quizevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	quizevent.DefaultQuestionsServed = quizeventDescQuestionsServed.Default.(int)
	// quizeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizeventDescCorrectAnswers := quizeventFields[4].Descriptor()
	// quizevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizevent.DefaultCorrectAnswers = quizeventDescCorrectAnswers.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
