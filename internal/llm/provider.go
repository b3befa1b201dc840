package llm

import (
	"context"

	"github.com/abenov/mathai/internal/chat"
)

// Provider is the core abstraction for LLM interaction. The tutor sends a
// full conversation and receives the assistant's next turn as plain text,
// optionally accompanied by grounding citations.
type Provider interface {
	// Generate sends the conversation to the LLM and returns the reply.
	// The call either resolves or fails; the caller treats both as
	// terminal outcomes for that turn.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history, oldest first. The final
	// message is the user turn being answered and is the only one whose
	// Attachment is honored.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// EnableSearch asks the provider to ground the answer with web search
	// where supported (Gemini). Other providers ignore it.
	EnableSearch bool
}

// Message represents a single message in the conversation.
type Message struct {
	Role       Role
	Content    string
	Attachment *chat.Attachment
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the LLM's output.
type Response struct {
	// Text is the assistant's reply. May be empty when the model declined
	// to answer; callers must handle that case.
	Text string

	// Sources are grounding citations, present only when the provider
	// grounded the answer.
	Sources []chat.Source

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
