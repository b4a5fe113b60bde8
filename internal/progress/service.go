package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sahajm/quizdeck/internal/badges"
	"github.com/sahajm/quizdeck/internal/rewards"
	"github.com/sahajm/quizdeck/internal/store"
)

// Service is the single write path for profile state. Points, badges,
// and mystery boxes all flow through here, and every mutation persists
// the profile together with its leaderboard entry before taking effect.
type Service struct {
	repo     store.ProfileRepo
	resolver *rewards.Resolver

	now   func() time.Time
	newID func() string

	profile *Profile
}

// NewService creates a Service. rng drives mystery box reward draws.
func NewService(repo store.ProfileRepo, rng rewards.Rand) *Service {
	return &Service{
		repo:     repo,
		resolver: rewards.NewResolver(rng),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Login loads the profile for id, creating a fresh one on first run.
// The returned profile is the one all later mutations apply to.
func (s *Service) Login(ctx context.Context, id Identity) (*Profile, error) {
	rec, err := s.repo.Get(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if rec == nil {
		p := &Profile{
			ID:     id.ID,
			Name:   id.Name,
			Badges: badges.Evaluate(0, badges.Definitions()),
		}
		if err := s.persist(ctx, p); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		s.profile = p
		return p, nil
	}

	boxes := make([]rewards.Box, len(rec.Boxes))
	for i, b := range rec.Boxes {
		boxes[i] = rewards.Box{ID: b.ID, Tier: rewards.Tier(b.Tier), CollectedAt: b.CollectedAt}
	}

	s.profile = &Profile{
		ID:     rec.ProfileID,
		Name:   rec.Name,
		Points: rec.Points,
		Badges: rec.Badges,
		Boxes:  boxes,
	}
	return s.profile, nil
}

// Profile returns the logged-in profile, or nil before Login.
func (s *Service) Profile() *Profile {
	return s.profile
}

// AddPoints adds delta points, recomputes badges, and persists. The
// in-memory profile is untouched when persistence fails. Non-positive
// deltas and calls before Login are no-ops.
func (s *Service) AddPoints(ctx context.Context, delta int) error {
	if s.profile == nil || delta <= 0 {
		return nil
	}

	next := s.profile.Clone()
	next.Points += delta
	next.Badges = badges.Evaluate(next.Points, badges.Definitions())

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("add points: %w", err)
	}

	s.profile = next
	return nil
}

// AddBox appends a new unopened box of the given tier to the inventory
// and persists. Returns the issued box. Calls before Login are no-ops.
func (s *Service) AddBox(ctx context.Context, tier rewards.Tier) (*rewards.Box, error) {
	if s.profile == nil {
		return nil, nil
	}

	box := rewards.Box{
		ID:          s.newID(),
		Tier:        tier,
		CollectedAt: s.now(),
	}

	next := s.profile.Clone()
	next.Boxes = append(next.Boxes, box)

	if err := s.persist(ctx, next); err != nil {
		return nil, fmt.Errorf("add box: %w", err)
	}

	s.profile = next
	return &box, nil
}

// OpenBox removes the oldest box from the inventory, resolves its
// reward, and applies any reward points. The dequeue and the reward's
// effects persist as one update: a failed save leaves the box in the
// inventory. Returns nil when the inventory is empty or nobody is
// logged in.
func (s *Service) OpenBox(ctx context.Context) (*rewards.Reward, error) {
	if s.profile == nil {
		return nil, nil
	}
	if len(s.profile.Boxes) == 0 {
		return nil, nil
	}

	box := s.profile.Boxes[0]
	reward := s.resolver.Resolve(box.Tier)

	next := s.profile.Clone()
	next.Boxes = next.Boxes[1:]
	if reward.Points > 0 {
		next.Points += reward.Points
		next.Badges = badges.Evaluate(next.Points, badges.Definitions())
	}

	if err := s.persist(ctx, next); err != nil {
		return nil, fmt.Errorf("open box: %w", err)
	}

	s.profile = next
	return &reward, nil
}

// Leaderboard returns entries ordered by points descending.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	recs, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, len(recs))
	for i, r := range recs {
		entries[i] = LeaderboardEntry{
			ProfileID: r.ProfileID,
			Name:      r.Name,
			Points:    r.Points,
			Badges:    r.Badges,
			BoxCount:  r.BoxCount,
		}
	}
	return entries, nil
}

func (s *Service) persist(ctx context.Context, p *Profile) error {
	boxes := make([]store.BoxRecord, len(p.Boxes))
	for i, b := range p.Boxes {
		boxes[i] = store.BoxRecord{ID: b.ID, Tier: string(b.Tier), CollectedAt: b.CollectedAt}
	}

	return s.repo.Save(ctx, &store.ProfileRecord{
		ProfileID: p.ID,
		Name:      p.Name,
		Points:    p.Points,
		Badges:    p.Badges,
		Boxes:     boxes,
	})
}
