// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abenov/mathai/ent/profilesnapshot"
)

// ProfileSnapshot is the model entity for the ProfileSnapshot schema.
type ProfileSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Progress state as a JSON document
	Data string `json:"data,omitempty"`
	// When the snapshot was written
	SavedAt      time.Time `json:"saved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProfileSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profilesnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case profilesnapshot.FieldData:
			values[i] = new(sql.NullString)
		case profilesnapshot.FieldSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProfileSnapshot fields.
func (_m *ProfileSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profilesnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profilesnapshot.FieldData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value.Valid {
				_m.Data = value.String
			}
		case profilesnapshot.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				_m.SavedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProfileSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ProfileSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProfileSnapshot.
// Note that you need to call ProfileSnapshot.Unwrap() before calling this method if this ProfileSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProfileSnapshot) Update() *ProfileSnapshotUpdateOne {
	return NewProfileSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProfileSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProfileSnapshot) Unwrap() *ProfileSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProfileSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProfileSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ProfileSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("data=")
	builder.WriteString(_m.Data)
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(_m.SavedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProfileSnapshots is a parsable slice of ProfileSnapshot.
type ProfileSnapshots []*ProfileSnapshot
