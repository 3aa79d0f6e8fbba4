package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent/answerevent"
	"github.com/abhisek/skillforge/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers)

	if len(data.Skills) > 0 {
		builder = builder.SetSkills(data.Skills)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetSkill(data.Skill).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skill string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Skill(skill)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) Stats(ctx context.Context) (QuizStats, error) {
	finished, err := r.client.QuizEvent.Query().
		Where(quizevent.Action("finish")).
		All(ctx)
	if err != nil {
		return QuizStats{}, fmt.Errorf("query quiz events: %w", err)
	}

	stats := QuizStats{QuizzesFinished: len(finished)}
	for _, e := range finished {
		stats.QuestionsAnswered += e.QuestionsServed
		stats.CorrectAnswers += e.CorrectAnswers
	}
	return stats, nil
}
