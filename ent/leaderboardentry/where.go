// Code generated by ent, DO NOT EDIT.

package leaderboardentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sahajm/quizdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldProfileID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldName, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldPoints, v))
}

// BoxCount applies equality check predicate on the "box_count" field. It's identical to BoxCountEQ.
func BoxCount(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldBoxCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContainsFold(FieldProfileID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldContainsFold(FieldName, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldPoints, v))
}

// BadgesIsNil applies the IsNil predicate on the "badges" field.
func BadgesIsNil() predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIsNull(FieldBadges))
}

// BadgesNotNil applies the NotNil predicate on the "badges" field.
func BadgesNotNil() predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotNull(FieldBadges))
}

// BoxCountEQ applies the EQ predicate on the "box_count" field.
func BoxCountEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldBoxCount, v))
}

// BoxCountNEQ applies the NEQ predicate on the "box_count" field.
func BoxCountNEQ(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldBoxCount, v))
}

// BoxCountIn applies the In predicate on the "box_count" field.
func BoxCountIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldBoxCount, vs...))
}

// BoxCountNotIn applies the NotIn predicate on the "box_count" field.
func BoxCountNotIn(vs ...int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldBoxCount, vs...))
}

// BoxCountGT applies the GT predicate on the "box_count" field.
func BoxCountGT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldBoxCount, v))
}

// BoxCountGTE applies the GTE predicate on the "box_count" field.
func BoxCountGTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldBoxCount, v))
}

// BoxCountLT applies the LT predicate on the "box_count" field.
func BoxCountLT(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldBoxCount, v))
}

// BoxCountLTE applies the LTE predicate on the "box_count" field.
func BoxCountLTE(v int) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldBoxCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeaderboardEntry) predicate.LeaderboardEntry {
	return predicate.LeaderboardEntry(sql.NotPredicates(p))
}
