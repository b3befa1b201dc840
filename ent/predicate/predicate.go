// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProfileSnapshot is the predicate function for profilesnapshot builders.
type ProfileSnapshot func(*sql.Selector)
