package progress

import (
	"github.com/sahajm/quizdeck/internal/rewards"
)

// Profile is the in-memory view of a learner's progress.
type Profile struct {
	ID     string
	Name   string
	Points int
	Badges []string
	Boxes  []rewards.Box
}

// Clone returns a deep copy, so mutations can be rolled back if
// persistence fails.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Badges = append([]string(nil), p.Badges...)
	cp.Boxes = append([]rewards.Box(nil), p.Boxes...)
	return &cp
}

// LeaderboardEntry is one row of the leaderboard view.
type LeaderboardEntry struct {
	ProfileID string
	Name      string
	Points    int
	Badges    []string
	BoxCount  int
}

// Identity names the learner playing this installation.
type Identity struct {
	ID   string
	Name string
}
