// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abenov/mathai/ent/llmrequestevent"
	"github.com/abenov/mathai/ent/profilesnapshot"
	"github.com/abenov/mathai/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profilesnapshotFields := schema.ProfileSnapshot{}.Fields()
	_ = profilesnapshotFields
	// profilesnapshotDescSavedAt is the schema descriptor for saved_at field.
	profilesnapshotDescSavedAt := profilesnapshotFields[1].Descriptor()
	// profilesnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	profilesnapshot.DefaultSavedAt = profilesnapshotDescSavedAt.Default.(func() time.Time)
}
