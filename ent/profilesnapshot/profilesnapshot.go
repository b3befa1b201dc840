// Code generated by ent, DO NOT EDIT.

package profilesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profilesnapshot type in the database.
	Label = "profile_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldSavedAt holds the string denoting the saved_at field in the database.
	FieldSavedAt = "saved_at"
	// Table holds the table name of the profilesnapshot in the database.
	Table = "profile_snapshots"
)

// Columns holds all SQL columns for profilesnapshot fields.
var Columns = []string{
	FieldID,
	FieldData,
	FieldSavedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSavedAt holds the default value on creation for the "saved_at" field.
	DefaultSavedAt func() time.Time
)

// OrderOption defines the ordering options for the ProfileSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByData orders the results by the data field.
func ByData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldData, opts...).ToFunc()
}

// BySavedAt orders the results by the saved_at field.
func BySavedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSavedAt, opts...).ToFunc()
}
