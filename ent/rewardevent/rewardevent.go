// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rewardevent type in the database.
	Label = "reward_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldBoxID holds the string denoting the box_id field in the database.
	FieldBoxID = "box_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldRewardDescription holds the string denoting the reward_description field in the database.
	FieldRewardDescription = "reward_description"
	// FieldRewardPoints holds the string denoting the reward_points field in the database.
	FieldRewardPoints = "reward_points"
	// Table holds the table name of the rewardevent in the database.
	Table = "reward_events"
)

// Columns holds all SQL columns for rewardevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProfileID,
	FieldBoxID,
	FieldAction,
	FieldTier,
	FieldRewardDescription,
	FieldRewardPoints,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	ProfileIDValidator func(string) error
	// BoxIDValidator is a validator for the "box_id" field. It is called by the builders before save.
	BoxIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(string) error
	// DefaultRewardDescription holds the default value on creation for the "reward_description" field.
	DefaultRewardDescription string
	// DefaultRewardPoints holds the default value on creation for the "reward_points" field.
	DefaultRewardPoints int
)

// OrderOption defines the ordering options for the RewardEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByBoxID orders the results by the box_id field.
func ByBoxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByRewardDescription orders the results by the reward_description field.
func ByRewardDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewardDescription, opts...).ToFunc()
}

// ByRewardPoints orders the results by the reward_points field.
func ByRewardPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewardPoints, opts...).ToFunc()
}
