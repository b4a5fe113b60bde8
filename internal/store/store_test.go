package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// No profile yet.
	p, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	rec := &ProfileRecord{
		ProfileID: "p1",
		Name:      "Asha",
		Points:    120,
		Badges:    []string{"Initiate", "Explorer"},
		Boxes: []BoxRecord{
			{ID: "b1", Tier: "common", CollectedAt: now},
			{ID: "b2", Tier: "rare", CollectedAt: now.Add(time.Minute)},
		},
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil profile")
	}
	if got.Points != 120 {
		t.Errorf("points = %d, want 120", got.Points)
	}
	if len(got.Badges) != 2 || got.Badges[1] != "Explorer" {
		t.Errorf("badges = %v, want [Initiate Explorer]", got.Badges)
	}
	if len(got.Boxes) != 2 || got.Boxes[0].ID != "b1" {
		t.Errorf("boxes = %v, want b1 first", got.Boxes)
	}
}

func TestProfileSaveUpdatesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	rec := &ProfileRecord{ProfileID: "p1", Name: "Asha", Points: 10}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec.Points = 40
	rec.Badges = []string{"Initiate"}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save (update): %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Points != 40 {
		t.Errorf("points = %d, want 40", got.Points)
	}
}

func TestLeaderboardMirrorsProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	save := func(id, name string, points, boxes int) {
		t.Helper()
		rec := &ProfileRecord{ProfileID: id, Name: name, Points: points}
		for i := 0; i < boxes; i++ {
			rec.Boxes = append(rec.Boxes, BoxRecord{ID: id + "-box", Tier: "common", CollectedAt: time.Now()})
		}
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	save("p1", "Asha", 50, 1)
	save("p2", "Ben", 200, 0)
	save("p3", "Cleo", 120, 3)

	entries, err := repo.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ProfileID != "p2" || entries[1].ProfileID != "p3" || entries[2].ProfileID != "p1" {
		t.Errorf("unexpected order: %v", entries)
	}
	if entries[1].BoxCount != 3 {
		t.Errorf("p3 box count = %d, want 3", entries[1].BoxCount)
	}

	// Updating the profile updates the leaderboard view too.
	save("p1", "Asha", 500, 1)
	entries, err = repo.Leaderboard(ctx, 1)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].ProfileID != "p1" {
		t.Errorf("expected p1 on top, got %v", entries)
	}
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRewardEvent(ctx, RewardEventData{
		ProfileID: "p1", BoxID: "b1", Action: "issued", Tier: "common",
	})
	if err != nil {
		t.Fatalf("append reward: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	err = repo.AppendRewardEvent(ctx, RewardEventData{
		ProfileID: "p1", BoxID: "b1", Action: "opened", Tier: "common", RewardPoints: 20,
	})
	if err != nil {
		t.Fatalf("append reward: %v", err)
	}

	rewards, err := repo.QueryRewardEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}
	if len(rewards) != 2 {
		t.Fatalf("expected 2 reward events, got %d", len(rewards))
	}
	// Newest first; the opened event interleaved with the LLM event.
	if rewards[0].Action != "opened" || rewards[1].Action != "issued" {
		t.Errorf("unexpected order: %v", rewards)
	}
	if rewards[0].Sequence != rewards[1].Sequence+2 {
		t.Errorf("sequence gap = %d, want 2 (LLM event in between)", rewards[0].Sequence-rewards[1].Sequence)
	}
}

func TestQuerySessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Kind: "multiple_choice", Topic: "oceans",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Kind: "multiple_choice", Topic: "oceans",
		QuestionsServed: 5, CorrectAnswers: 4, PointsEarned: 40, DurationSecs: 90,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary (start events excluded), got %d", len(summaries))
	}
	sum := summaries[0]
	if sum.CorrectAnswers != 4 || sum.PointsEarned != 40 || sum.Topic != "oceans" {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen",
		Success: true, RequestBody: "[user]\nhello", ResponseBody: `{"items":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhello" {
		t.Errorf("unexpected event: %+v", got)
	}
}
