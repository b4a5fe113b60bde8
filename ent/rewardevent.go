// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sahajm/quizdeck/ent/rewardevent"
)

// RewardEvent is the model entity for the RewardEvent schema.
type RewardEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global event order, shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Profile the box belongs to
	ProfileID string `json:"profile_id,omitempty"`
	// UUID of the box
	BoxID string `json:"box_id,omitempty"`
	// issued or opened
	Action string `json:"action,omitempty"`
	// common, rare, epic, or legendary
	Tier string `json:"tier,omitempty"`
	// Resolved reward text (opened only)
	RewardDescription string `json:"reward_description,omitempty"`
	// Points granted by the reward (opened only)
	RewardPoints int `json:"reward_points,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RewardEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldID, rewardevent.FieldSequence, rewardevent.FieldRewardPoints:
			values[i] = new(sql.NullInt64)
		case rewardevent.FieldProfileID, rewardevent.FieldBoxID, rewardevent.FieldAction, rewardevent.FieldTier, rewardevent.FieldRewardDescription:
			values[i] = new(sql.NullString)
		case rewardevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RewardEvent fields.
func (_m *RewardEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rewardevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case rewardevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case rewardevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case rewardevent.FieldBoxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field box_id", values[i])
			} else if value.Valid {
				_m.BoxID = value.String
			}
		case rewardevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case rewardevent.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case rewardevent.FieldRewardDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reward_description", values[i])
			} else if value.Valid {
				_m.RewardDescription = value.String
			}
		case rewardevent.FieldRewardPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reward_points", values[i])
			} else if value.Valid {
				_m.RewardPoints = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RewardEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RewardEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RewardEvent.
// Note that you need to call RewardEvent.Unwrap() before calling this method if this RewardEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RewardEvent) Update() *RewardEventUpdateOne {
	return NewRewardEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RewardEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RewardEvent) Unwrap() *RewardEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RewardEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RewardEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RewardEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("box_id=")
	builder.WriteString(_m.BoxID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("reward_description=")
	builder.WriteString(_m.RewardDescription)
	builder.WriteString(", ")
	builder.WriteString("reward_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.RewardPoints))
	builder.WriteByte(')')
	return builder.String()
}

// RewardEvents is a parsable slice of RewardEvent.
type RewardEvents []*RewardEvent
