package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/bacdz/eduai/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetSchemaName(data.SchemaName).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageSummary, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byPurpose := make(map[string]*UsageSummary)
	for _, e := range events {
		s, ok := byPurpose[e.Purpose]
		if !ok {
			s = &UsageSummary{Purpose: e.Purpose}
			byPurpose[e.Purpose] = s
		}
		s.Requests++
		if !e.Success {
			s.Failures++
		}
		s.InputTokens += e.InputTokens
		s.OutputTokens += e.OutputTokens
	}

	out := make([]UsageSummary, 0, len(byPurpose))
	for _, s := range byPurpose {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}
