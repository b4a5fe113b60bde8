// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
)

// LeaderboardEntry is the model entity for the LeaderboardEntry schema.
type LeaderboardEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Matches Profile.profile_id
	ProfileID string `json:"profile_id,omitempty"`
	// Display name
	Name string `json:"name,omitempty"`
	// Points mirrored from the profile
	Points int `json:"points,omitempty"`
	// Badge names mirrored from the profile
	Badges []string `json:"badges,omitempty"`
	// Unopened mystery box count
	BoxCount int `json:"box_count,omitempty"`
	// Last write time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeaderboardEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leaderboardentry.FieldBadges:
			values[i] = new([]byte)
		case leaderboardentry.FieldID, leaderboardentry.FieldPoints, leaderboardentry.FieldBoxCount:
			values[i] = new(sql.NullInt64)
		case leaderboardentry.FieldProfileID, leaderboardentry.FieldName:
			values[i] = new(sql.NullString)
		case leaderboardentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeaderboardEntry fields.
func (_m *LeaderboardEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leaderboardentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case leaderboardentry.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case leaderboardentry.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case leaderboardentry.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case leaderboardentry.FieldBadges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field badges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Badges); err != nil {
					return fmt.Errorf("unmarshal field badges: %w", err)
				}
			}
		case leaderboardentry.FieldBoxCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_count", values[i])
			} else if value.Valid {
				_m.BoxCount = int(value.Int64)
			}
		case leaderboardentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeaderboardEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LeaderboardEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LeaderboardEntry.
// Note that you need to call LeaderboardEntry.Unwrap() before calling this method if this LeaderboardEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeaderboardEntry) Update() *LeaderboardEntryUpdateOne {
	return NewLeaderboardEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeaderboardEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeaderboardEntry) Unwrap() *LeaderboardEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeaderboardEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeaderboardEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LeaderboardEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("badges=")
	builder.WriteString(fmt.Sprintf("%v", _m.Badges))
	builder.WriteString(", ")
	builder.WriteString("box_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoxCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeaderboardEntries is a parsable slice of LeaderboardEntry.
type LeaderboardEntries []*LeaderboardEntry
