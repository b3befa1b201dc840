// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ProfileSnapshotsColumns holds the columns for the "profile_snapshots" table.
	ProfileSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "data", Type: field.TypeString},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// ProfileSnapshotsTable holds the schema information for the "profile_snapshots" table.
	ProfileSnapshotsTable = &schema.Table{
		Name:       "profile_snapshots",
		Columns:    ProfileSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProfileSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilesnapshot_saved_at",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ProfileSnapshotsTable,
	}
)

func init() {
}
