package store

import (
	"context"
	"fmt"

	"github.com/sahajm/quizdeck/ent"
	"github.com/sahajm/quizdeck/ent/rewardevent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetBoxID(data.BoxID).
		SetAction(data.Action).
		SetTier(data.Tier).
		SetRewardDescription(data.RewardDescription).
		SetRewardPoints(data.RewardPoints).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardEventRecord, len(events))
	for i, e := range events {
		records[i] = RewardEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			RewardEventData: RewardEventData{
				ProfileID:         e.ProfileID,
				BoxID:             e.BoxID,
				Action:            e.Action,
				Tier:              e.Tier,
				RewardDescription: e.RewardDescription,
				RewardPoints:      e.RewardPoints,
			},
		}
	}
	return records, nil
}
