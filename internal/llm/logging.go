package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abenov/mathai/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. The provider label is
// recorded alongside the model on every event row.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
