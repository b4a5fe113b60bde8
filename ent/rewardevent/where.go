// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sahajm/quizdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldProfileID, v))
}

// BoxID applies equality check predicate on the "box_id" field. It's identical to BoxIDEQ.
func BoxID(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldBoxID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldAction, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTier, v))
}

// RewardDescription applies equality check predicate on the "reward_description" field. It's identical to RewardDescriptionEQ.
func RewardDescription(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldRewardDescription, v))
}

// RewardPoints applies equality check predicate on the "reward_points" field. It's identical to RewardPointsEQ.
func RewardPoints(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldRewardPoints, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// BoxIDEQ applies the EQ predicate on the "box_id" field.
func BoxIDEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldBoxID, v))
}

// BoxIDNEQ applies the NEQ predicate on the "box_id" field.
func BoxIDNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldBoxID, v))
}

// BoxIDIn applies the In predicate on the "box_id" field.
func BoxIDIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldBoxID, vs...))
}

// BoxIDNotIn applies the NotIn predicate on the "box_id" field.
func BoxIDNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldBoxID, vs...))
}

// BoxIDGT applies the GT predicate on the "box_id" field.
func BoxIDGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldBoxID, v))
}

// BoxIDGTE applies the GTE predicate on the "box_id" field.
func BoxIDGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldBoxID, v))
}

// BoxIDLT applies the LT predicate on the "box_id" field.
func BoxIDLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldBoxID, v))
}

// BoxIDLTE applies the LTE predicate on the "box_id" field.
func BoxIDLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldBoxID, v))
}

// BoxIDContains applies the Contains predicate on the "box_id" field.
func BoxIDContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldBoxID, v))
}

// BoxIDHasPrefix applies the HasPrefix predicate on the "box_id" field.
func BoxIDHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldBoxID, v))
}

// BoxIDHasSuffix applies the HasSuffix predicate on the "box_id" field.
func BoxIDHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldBoxID, v))
}

// BoxIDEqualFold applies the EqualFold predicate on the "box_id" field.
func BoxIDEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldBoxID, v))
}

// BoxIDContainsFold applies the ContainsFold predicate on the "box_id" field.
func BoxIDContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldBoxID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldAction, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldTier, v))
}

// RewardDescriptionEQ applies the EQ predicate on the "reward_description" field.
func RewardDescriptionEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldRewardDescription, v))
}

// RewardDescriptionNEQ applies the NEQ predicate on the "reward_description" field.
func RewardDescriptionNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldRewardDescription, v))
}

// RewardDescriptionIn applies the In predicate on the "reward_description" field.
func RewardDescriptionIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldRewardDescription, vs...))
}

// RewardDescriptionNotIn applies the NotIn predicate on the "reward_description" field.
func RewardDescriptionNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldRewardDescription, vs...))
}

// RewardDescriptionGT applies the GT predicate on the "reward_description" field.
func RewardDescriptionGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldRewardDescription, v))
}

// RewardDescriptionGTE applies the GTE predicate on the "reward_description" field.
func RewardDescriptionGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldRewardDescription, v))
}

// RewardDescriptionLT applies the LT predicate on the "reward_description" field.
func RewardDescriptionLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldRewardDescription, v))
}

// RewardDescriptionLTE applies the LTE predicate on the "reward_description" field.
func RewardDescriptionLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldRewardDescription, v))
}

// RewardDescriptionContains applies the Contains predicate on the "reward_description" field.
func RewardDescriptionContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldRewardDescription, v))
}

// RewardDescriptionHasPrefix applies the HasPrefix predicate on the "reward_description" field.
func RewardDescriptionHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldRewardDescription, v))
}

// RewardDescriptionHasSuffix applies the HasSuffix predicate on the "reward_description" field.
func RewardDescriptionHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldRewardDescription, v))
}

// RewardDescriptionEqualFold applies the EqualFold predicate on the "reward_description" field.
func RewardDescriptionEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldRewardDescription, v))
}

// RewardDescriptionContainsFold applies the ContainsFold predicate on the "reward_description" field.
func RewardDescriptionContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldRewardDescription, v))
}

// RewardPointsEQ applies the EQ predicate on the "reward_points" field.
func RewardPointsEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldRewardPoints, v))
}

// RewardPointsNEQ applies the NEQ predicate on the "reward_points" field.
func RewardPointsNEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldRewardPoints, v))
}

// RewardPointsIn applies the In predicate on the "reward_points" field.
func RewardPointsIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldRewardPoints, vs...))
}

// RewardPointsNotIn applies the NotIn predicate on the "reward_points" field.
func RewardPointsNotIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldRewardPoints, vs...))
}

// RewardPointsGT applies the GT predicate on the "reward_points" field.
func RewardPointsGT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldRewardPoints, v))
}

// RewardPointsGTE applies the GTE predicate on the "reward_points" field.
func RewardPointsGTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldRewardPoints, v))
}

// RewardPointsLT applies the LT predicate on the "reward_points" field.
func RewardPointsLT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldRewardPoints, v))
}

// RewardPointsLTE applies the LTE predicate on the "reward_points" field.
func RewardPointsLTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldRewardPoints, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.NotPredicates(p))
}
