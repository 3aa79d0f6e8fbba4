package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/skillforge/ent"
	"github.com/abhisek/skillforge/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, entToLLMEvent(e))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	event := entToLLMEvent(e)
	return &event, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	type acc struct {
		usage   LLMUsage
		totalMs int64
	}
	byPurpose := make(map[string]*acc)
	for _, e := range events {
		a, ok := byPurpose[e.Purpose]
		if !ok {
			a = &acc{usage: LLMUsage{Purpose: e.Purpose}}
			byPurpose[e.Purpose] = a
		}
		a.usage.Calls++
		a.usage.InputTokens += e.InputTokens
		a.usage.OutputTokens += e.OutputTokens
		a.totalMs += e.LatencyMs
	}

	usage := make([]LLMUsage, 0, len(byPurpose))
	for _, a := range byPurpose {
		a.usage.AvgLatencyMs = a.totalMs / int64(a.usage.Calls)
		usage = append(usage, a.usage)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Purpose < usage[j].Purpose })
	return usage, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	usage := make([]LLMModelUsage, 0, len(byModel))
	for _, u := range byModel {
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Model < usage[j].Model })
	return usage, nil
}

func entToLLMEvent(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
