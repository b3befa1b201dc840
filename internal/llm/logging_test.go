package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abenov/mathai/internal/store"
)

type memEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *memEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *memEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (r *memEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestLoggingRecordsProviderAndModel(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "x = 2",
		Usage: Usage{InputTokens: 120, OutputTokens: 40},
	})

	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "tutor-exchange")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", e.Provider)
	}
	if e.Model != "mock" {
		t.Errorf("model = %q, want mock", e.Model)
	}
	if e.Purpose != "tutor-exchange" {
		t.Errorf("purpose = %q, want tutor-exchange", e.Purpose)
	}
	if e.InputTokens != 120 || e.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 120/40", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("success = false, want true")
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})

	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "openai" {
		t.Errorf("provider = %q, want openai", e.Provider)
	}
	if e.Success {
		t.Error("success = true, want false")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
}
