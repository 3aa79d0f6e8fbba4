package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetRole(data.Role).
		SetReadiness(data.Readiness).
		SetGapCount(data.GapCount).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}
