package store

import (
	"context"
	"fmt"

	"github.com/sahajm/quizdeck/ent"
	"github.com/sahajm/quizdeck/ent/leaderboardentry"
	"github.com/sahajm/quizdeck/ent/profile"
	entschema "github.com/sahajm/quizdeck/ent/schema"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, profileID string) (*ProfileRecord, error) {
	p, err := r.client.Profile.Query().
		Where(profile.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	boxes := make([]BoxRecord, len(p.Boxes))
	for i, b := range p.Boxes {
		boxes[i] = BoxRecord{ID: b.ID, Tier: b.Tier, CollectedAt: b.CollectedAt}
	}

	return &ProfileRecord{
		ProfileID: p.ProfileID,
		Name:      p.Name,
		Points:    p.Points,
		Badges:    p.Badges,
		Boxes:     boxes,
	}, nil
}

// Save writes the profile and its leaderboard entry in one transaction.
// Either both rows reflect rec afterwards, or neither does.
func (r *profileRepo) Save(ctx context.Context, rec *ProfileRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := saveProfileTx(ctx, tx, rec); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile save: %w", err)
	}
	return nil
}

func saveProfileTx(ctx context.Context, tx *ent.Tx, rec *ProfileRecord) error {
	boxes := make([]entschema.BoxItem, len(rec.Boxes))
	for i, b := range rec.Boxes {
		boxes[i] = entschema.BoxItem{ID: b.ID, Tier: b.Tier, CollectedAt: b.CollectedAt}
	}

	existing, err := tx.Profile.Query().
		Where(profile.ProfileID(rec.ProfileID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.Profile.Create().
			SetProfileID(rec.ProfileID).
			SetName(rec.Name).
			SetPoints(rec.Points).
			SetBadges(rec.Badges).
			SetBoxes(boxes).
			Save(ctx)
	case err == nil:
		_, err = tx.Profile.UpdateOne(existing).
			SetName(rec.Name).
			SetPoints(rec.Points).
			SetBadges(rec.Badges).
			SetBoxes(boxes).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	entry, err := tx.LeaderboardEntry.Query().
		Where(leaderboardentry.ProfileID(rec.ProfileID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = tx.LeaderboardEntry.Create().
			SetProfileID(rec.ProfileID).
			SetName(rec.Name).
			SetPoints(rec.Points).
			SetBadges(rec.Badges).
			SetBoxCount(len(rec.Boxes)).
			Save(ctx)
	case err == nil:
		_, err = tx.LeaderboardEntry.UpdateOne(entry).
			SetName(rec.Name).
			SetPoints(rec.Points).
			SetBadges(rec.Badges).
			SetBoxCount(len(rec.Boxes)).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save leaderboard entry: %w", err)
	}

	return nil
}

func (r *profileRepo) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRecord, error) {
	query := r.client.LeaderboardEntry.Query().
		Order(ent.Desc(leaderboardentry.FieldPoints))

	if limit > 0 {
		query = query.Limit(limit)
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	records := make([]LeaderboardRecord, len(entries))
	for i, e := range entries {
		records[i] = LeaderboardRecord{
			ProfileID: e.ProfileID,
			Name:      e.Name,
			Points:    e.Points,
			Badges:    e.Badges,
			BoxCount:  e.BoxCount,
		}
	}
	return records, nil
}
