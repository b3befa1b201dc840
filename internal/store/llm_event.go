package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abenov/mathai/ent"
	"github.com/abenov/mathai/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetTimestamp(time.Now().UTC()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp), ent.Desc(llmrequestevent.FieldID))
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMRequestEventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMRequestEventRecord{
			ID:        row.ID,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	out := make([]LLMUsageStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMUsageStats{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by model: %w", err)
	}

	out := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return out, nil
}
