package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the learner's persisted progress state: points, earned
// badges, and the mystery box inventory.
type Profile struct {
	ent.Schema
}

// BoxItem is the serialized form of one unopened mystery box. Order in
// the slice is collection order, oldest first.
type BoxItem struct {
	ID          string    `json:"id"`
	Tier        string    `json:"tier"`
	CollectedAt time.Time `json:"collected_at"`
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Stable learner identifier"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Int("points").
			Default(0).
			NonNegative().
			Comment("Lifetime points total"),
		field.JSON("badges", []string{}).
			Optional().
			Comment("Earned badge names, ladder order"),
		field.JSON("boxes", []BoxItem{}).
			Optional().
			Comment("Unopened mystery boxes, oldest first"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
	}
}
