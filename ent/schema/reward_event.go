package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records mystery box lifecycle: a box being issued after a
// completed session, and a box being opened into a concrete reward.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty().
			Comment("Profile the box belongs to"),
		field.String("box_id").
			NotEmpty().
			Comment("UUID of the box"),
		field.String("action").
			NotEmpty().
			Comment("issued or opened"),
		field.String("tier").
			NotEmpty().
			Comment("common, rare, epic, or legendary"),
		field.String("reward_description").
			Default("").
			Comment("Resolved reward text (opened only)"),
		field.Int("reward_points").
			Default(0).
			Comment("Points granted by the reward (opened only)"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("box_id"),
		index.Fields("action"),
	}
}
