package rewards

import "time"

// Box is an unopened mystery box queued on a learner's profile.
// Boxes are opened strictly oldest-first.
type Box struct {
	ID          string
	Tier        Tier
	CollectedAt time.Time
}

// Reward is what a box contained. It is returned to the caller for display
// and never persisted; only its point effect (if any) reaches the ledger.
type Reward struct {
	Tier        Tier
	Description string

	// Points is the point credit this reward grants. Zero for
	// cosmetic-only rewards.
	Points int
}
