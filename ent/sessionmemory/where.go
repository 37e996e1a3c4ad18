// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cucinellclark/bvbrc-copilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUserID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldUserID, v))
}

// FocusIsNil applies the IsNil predicate on the "focus" field.
func FocusIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldFocus))
}

// FocusNotNil applies the NotNil predicate on the "focus" field.
func FocusNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldFocus))
}

// FactsIsNil applies the IsNil predicate on the "facts" field.
func FactsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldFacts))
}

// FactsNotNil applies the NotNil predicate on the "facts" field.
func FactsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldFacts))
}

// FactsMetaIsNil applies the IsNil predicate on the "facts_meta" field.
func FactsMetaIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldFactsMeta))
}

// FactsMetaNotNil applies the NotNil predicate on the "facts_meta" field.
func FactsMetaNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldFactsMeta))
}

// ToolFactsIsNil applies the IsNil predicate on the "tool_facts" field.
func ToolFactsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldToolFacts))
}

// ToolFactsNotNil applies the NotNil predicate on the "tool_facts" field.
func ToolFactsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldToolFacts))
}

// EntitiesIsNil applies the IsNil predicate on the "entities" field.
func EntitiesIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldEntities))
}

// EntitiesNotNil applies the NotNil predicate on the "entities" field.
func EntitiesNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldEntities))
}

// LastToolIsNil applies the IsNil predicate on the "last_tool" field.
func LastToolIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldLastTool))
}

// LastToolNotNil applies the NotNil predicate on the "last_tool" field.
func LastToolNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldLastTool))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ChatSession) predicate.SessionMemory {
	return predicate.SessionMemory(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.NotPredicates(p))
}
