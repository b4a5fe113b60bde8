package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeaderboardEntry is the leaderboard's view of a profile. It is written
// in the same transaction as the Profile row, so the two can never
// disagree.
type LeaderboardEntry struct {
	ent.Schema
}

func (LeaderboardEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Matches Profile.profile_id"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Int("points").
			Default(0).
			NonNegative().
			Comment("Points mirrored from the profile"),
		field.JSON("badges", []string{}).
			Optional().
			Comment("Badge names mirrored from the profile"),
		field.Int("box_count").
			Default(0).
			NonNegative().
			Comment("Unopened mystery box count"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (LeaderboardEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("points"),
	}
}
