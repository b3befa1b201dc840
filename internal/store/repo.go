package store

import (
	"context"
	"time"

	"github.com/abenov/mathai/internal/progress"
)

// ProfileRepo is the durable slot for the learner's progress state.
type ProfileRepo interface {
	// Load returns the stored state, or (nil, nil) when no snapshot exists.
	// A snapshot that fails to parse or validate is treated the same as an
	// absent one: corrupt local state must never block startup.
	Load(ctx context.Context) (*progress.State, error)

	// Save serializes state and replaces any prior snapshot. It is called
	// synchronously after every progress transition, so the stored blob
	// always reflects the last committed state. Saving the same state
	// twice is harmless.
	Save(ctx context.Context, state *progress.State) error

	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
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
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	// Limit caps the number of results. Zero means no limit.
	Limit int
	// Purpose filters to events with a matching purpose label.
	Purpose string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
