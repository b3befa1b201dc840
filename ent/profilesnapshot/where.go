// Code generated by ent, DO NOT EDIT.

package profilesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abenov/mathai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLTE(FieldID, id))
}

// Data applies equality check predicate on the "data" field. It's identical to DataEQ.
func Data(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldData, v))
}

// SavedAt applies equality check predicate on the "saved_at" field. It's identical to SavedAtEQ.
func SavedAt(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// DataEQ applies the EQ predicate on the "data" field.
func DataEQ(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldData, v))
}

// DataNEQ applies the NEQ predicate on the "data" field.
func DataNEQ(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNEQ(FieldData, v))
}

// DataIn applies the In predicate on the "data" field.
func DataIn(vs ...string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldIn(FieldData, vs...))
}

// DataNotIn applies the NotIn predicate on the "data" field.
func DataNotIn(vs ...string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNotIn(FieldData, vs...))
}

// DataGT applies the GT predicate on the "data" field.
func DataGT(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGT(FieldData, v))
}

// DataGTE applies the GTE predicate on the "data" field.
func DataGTE(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGTE(FieldData, v))
}

// DataLT applies the LT predicate on the "data" field.
func DataLT(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLT(FieldData, v))
}

// DataLTE applies the LTE predicate on the "data" field.
func DataLTE(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLTE(FieldData, v))
}

// DataContains applies the Contains predicate on the "data" field.
func DataContains(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldContains(FieldData, v))
}

// DataHasPrefix applies the HasPrefix predicate on the "data" field.
func DataHasPrefix(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldHasPrefix(FieldData, v))
}

// DataHasSuffix applies the HasSuffix predicate on the "data" field.
func DataHasSuffix(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldHasSuffix(FieldData, v))
}

// DataEqualFold applies the EqualFold predicate on the "data" field.
func DataEqualFold(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEqualFold(FieldData, v))
}

// DataContainsFold applies the ContainsFold predicate on the "data" field.
func DataContainsFold(v string) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldContainsFold(FieldData, v))
}

// SavedAtEQ applies the EQ predicate on the "saved_at" field.
func SavedAtEQ(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// SavedAtNEQ applies the NEQ predicate on the "saved_at" field.
func SavedAtNEQ(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNEQ(FieldSavedAt, v))
}

// SavedAtIn applies the In predicate on the "saved_at" field.
func SavedAtIn(vs ...time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldIn(FieldSavedAt, vs...))
}

// SavedAtNotIn applies the NotIn predicate on the "saved_at" field.
func SavedAtNotIn(vs ...time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldNotIn(FieldSavedAt, vs...))
}

// SavedAtGT applies the GT predicate on the "saved_at" field.
func SavedAtGT(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGT(FieldSavedAt, v))
}

// SavedAtGTE applies the GTE predicate on the "saved_at" field.
func SavedAtGTE(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldGTE(FieldSavedAt, v))
}

// SavedAtLT applies the LT predicate on the "saved_at" field.
func SavedAtLT(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLT(FieldSavedAt, v))
}

// SavedAtLTE applies the LTE predicate on the "saved_at" field.
func SavedAtLTE(v time.Time) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.FieldLTE(FieldSavedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProfileSnapshot) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProfileSnapshot) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProfileSnapshot) predicate.ProfileSnapshot {
	return predicate.ProfileSnapshot(sql.NotPredicates(p))
}
