package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema guards the persisted blob against hand-edited or legacy
// data: a snapshot that no longer matches the current shape is discarded
// instead of being half-loaded into a corrupt State.
const profileSchema = `{
	"type": "object",
	"required": ["solvedCount", "xp", "streak", "lastTopic", "lastActive", "badges", "sessions"],
	"properties": {
		"solvedCount": {"type": "integer", "minimum": 0},
		"xp":          {"type": "integer", "minimum": 0},
		"streak":      {"type": "integer", "minimum": 1},
		"lastTopic":   {"type": "string"},
		"lastActive":  {"type": "string"},
		"badges":      {"type": "array", "items": {"type": "string"}},
		"sessions": {
			"type": "array",
			"maxItems": 20,
			"items": {
				"type": "object",
				"required": ["id", "title", "topic", "grade", "messages", "timestamp"],
				"properties": {
					"id":        {"type": "string"},
					"title":     {"type": "string"},
					"topic":     {"type": "string"},
					"grade":     {"type": "string"},
					"timestamp": {"type": "integer"},
					"messages": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["id", "role", "content", "timestamp"],
							"properties": {
								"id":        {"type": "string"},
								"role":      {"enum": ["user", "assistant"]},
								"content":   {"type": "string"},
								"timestamp": {"type": "integer"}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	compileOnce     sync.Once
	compiledProfile *jsonschema.Schema
	compileErr      error
)

// validateProfileBlob checks a stored snapshot against the profile schema.
func validateProfileBlob(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(profileSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://profile.json", doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledProfile, compileErr = c.Compile("schema://profile.json")
	})
	if compileErr != nil {
		return compileErr
	}

	if err := compiledProfile.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
