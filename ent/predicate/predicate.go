// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LeaderboardEntry is the predicate function for leaderboardentry builders.
type LeaderboardEntry func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// RewardEvent is the predicate function for rewardevent builders.
type RewardEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
