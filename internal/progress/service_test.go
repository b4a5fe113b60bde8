package progress

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/sahajm/quizdeck/internal/rewards"
	"github.com/sahajm/quizdeck/internal/store"
)

// fakeProfileRepo is an in-memory ProfileRepo. Save stores a deep copy,
// so later mutations of the record don't leak into the "database".
type fakeProfileRepo struct {
	profiles map[string]store.ProfileRecord
	failNext bool
	saves    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]store.ProfileRecord)}
}

func (f *fakeProfileRepo) Get(_ context.Context, profileID string) (*store.ProfileRecord, error) {
	rec, ok := f.profiles[profileID]
	if !ok {
		return nil, nil
	}
	cp := rec
	cp.Badges = append([]string(nil), rec.Badges...)
	cp.Boxes = append([]store.BoxRecord(nil), rec.Boxes...)
	return &cp, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, rec *store.ProfileRecord) error {
	if f.failNext {
		f.failNext = false
		return errors.New("disk full")
	}
	cp := *rec
	cp.Badges = append([]string(nil), rec.Badges...)
	cp.Boxes = append([]store.BoxRecord(nil), rec.Boxes...)
	f.profiles[rec.ProfileID] = cp
	f.saves++
	return nil
}

func (f *fakeProfileRepo) Leaderboard(_ context.Context, limit int) ([]store.LeaderboardRecord, error) {
	var out []store.LeaderboardRecord
	for _, rec := range f.profiles {
		out = append(out, store.LeaderboardRecord{
			ProfileID: rec.ProfileID,
			Name:      rec.Name,
			Points:    rec.Points,
			Badges:    append([]string(nil), rec.Badges...),
			BoxCount:  len(rec.Boxes),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fixedRand always picks index 0 and never passes a probability check.
type fixedRand struct{}

func (fixedRand) IntN(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.99 }

func loggedInService(t *testing.T) (*Service, *fakeProfileRepo) {
	t.Helper()
	repo := newFakeProfileRepo()
	svc := NewService(repo, fixedRand{})
	if _, err := svc.Login(context.Background(), Identity{ID: "p1", Name: "Asha"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	return svc, repo
}

func TestLoginCreatesProfile(t *testing.T) {
	svc, repo := loggedInService(t)

	p := svc.Profile()
	if p == nil {
		t.Fatal("expected profile after login")
	}
	if p.Points != 0 {
		t.Errorf("points = %d, want 0", p.Points)
	}
	if len(p.Badges) != 1 || p.Badges[0] != "Initiate" {
		t.Errorf("badges = %v, want [Initiate]", p.Badges)
	}
	if _, ok := repo.profiles["p1"]; !ok {
		t.Error("expected fresh profile persisted on first login")
	}
}

func TestLoginLoadsExistingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = store.ProfileRecord{
		ProfileID: "p1", Name: "Asha", Points: 160,
		Badges: []string{"Initiate", "Explorer", "Scholar"},
		Boxes:  []store.BoxRecord{{ID: "b1", Tier: "rare"}},
	}

	svc := NewService(repo, fixedRand{})
	p, err := svc.Login(context.Background(), Identity{ID: "p1", Name: "Asha"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if p.Points != 160 || len(p.Boxes) != 1 || p.Boxes[0].Tier != rewards.TierRare {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestAddPointsIsAdditive(t *testing.T) {
	svc, _ := loggedInService(t)
	ctx := context.Background()

	for _, delta := range []int{10, 10, 30} {
		if err := svc.AddPoints(ctx, delta); err != nil {
			t.Fatalf("add points: %v", err)
		}
	}

	p := svc.Profile()
	if p.Points != 50 {
		t.Errorf("points = %d, want 50", p.Points)
	}
	// 50 points crosses the Explorer threshold.
	if len(p.Badges) != 2 || p.Badges[1] != "Explorer" {
		t.Errorf("badges = %v, want [Initiate Explorer]", p.Badges)
	}
}

func TestAddPointsIgnoresNonPositive(t *testing.T) {
	svc, repo := loggedInService(t)
	ctx := context.Background()
	saves := repo.saves

	if err := svc.AddPoints(ctx, 0); err != nil {
		t.Fatalf("add 0: %v", err)
	}
	if err := svc.AddPoints(ctx, -5); err != nil {
		t.Fatalf("add -5: %v", err)
	}
	if svc.Profile().Points != 0 {
		t.Errorf("points = %d, want 0", svc.Profile().Points)
	}
	if repo.saves != saves {
		t.Error("expected no persistence for non-positive deltas")
	}
}

func TestAddPointsRollsBackOnPersistFailure(t *testing.T) {
	svc, repo := loggedInService(t)
	ctx := context.Background()

	if err := svc.AddPoints(ctx, 60); err != nil {
		t.Fatalf("add points: %v", err)
	}

	repo.failNext = true
	if err := svc.AddPoints(ctx, 100); err == nil {
		t.Fatal("expected error when persistence fails")
	}

	p := svc.Profile()
	if p.Points != 60 {
		t.Errorf("points = %d, want 60 (failed write must not stick)", p.Points)
	}
	if len(p.Badges) != 2 {
		t.Errorf("badges = %v, want the pre-failure set", p.Badges)
	}
}

func TestAddPointsBeforeLoginIsNoop(t *testing.T) {
	svc := NewService(newFakeProfileRepo(), fixedRand{})
	if err := svc.AddPoints(context.Background(), 10); err != nil {
		t.Fatalf("expected no-op, got: %v", err)
	}
}

func TestInventoryOpsBeforeLoginAreNoops(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo, fixedRand{})
	ctx := context.Background()

	box, err := svc.AddBox(ctx, rewards.TierCommon)
	if box != nil || err != nil {
		t.Errorf("AddBox = (%v, %v), want silent no-op", box, err)
	}

	reward, err := svc.OpenBox(ctx)
	if reward != nil || err != nil {
		t.Errorf("OpenBox = (%v, %v), want silent no-op", reward, err)
	}

	if repo.saves != 0 {
		t.Errorf("repo saw %d saves, want none", repo.saves)
	}
}

func TestOpenBoxDequeuesOldestFirst(t *testing.T) {
	svc, _ := loggedInService(t)
	ctx := context.Background()

	if _, err := svc.AddBox(ctx, rewards.TierCommon); err != nil {
		t.Fatalf("add common: %v", err)
	}
	if _, err := svc.AddBox(ctx, rewards.TierRare); err != nil {
		t.Fatalf("add rare: %v", err)
	}

	reward, err := svc.OpenBox(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if reward == nil {
		t.Fatal("expected a reward")
	}
	if reward.Tier != rewards.TierCommon {
		t.Errorf("reward tier = %s, want common (oldest box)", reward.Tier)
	}

	p := svc.Profile()
	if len(p.Boxes) != 1 || p.Boxes[0].Tier != rewards.TierRare {
		t.Errorf("remaining boxes = %v, want the rare one", p.Boxes)
	}
}

func TestOpenBoxAppliesRewardPoints(t *testing.T) {
	svc, _ := loggedInService(t)
	ctx := context.Background()

	if _, err := svc.AddBox(ctx, rewards.TierCommon); err != nil {
		t.Fatalf("add box: %v", err)
	}

	// fixedRand picks index 0 of the common pool, which grants points.
	want := rewards.Pool(rewards.TierCommon)[0]
	if want.Points <= 0 {
		t.Fatalf("test setup: expected a points reward at index 0, got %+v", want)
	}

	reward, err := svc.OpenBox(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if reward.Points != want.Points {
		t.Errorf("reward points = %d, want %d", reward.Points, want.Points)
	}
	if svc.Profile().Points != want.Points {
		t.Errorf("profile points = %d, want %d", svc.Profile().Points, want.Points)
	}
}

func TestOpenBoxEmptyInventory(t *testing.T) {
	svc, repo := loggedInService(t)
	saves := repo.saves

	reward, err := svc.OpenBox(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if reward != nil {
		t.Errorf("expected nil reward, got %+v", reward)
	}
	if repo.saves != saves {
		t.Error("expected no persistence on empty open")
	}
}

func TestOpenBoxAtomicOnPersistFailure(t *testing.T) {
	svc, repo := loggedInService(t)
	ctx := context.Background()

	if _, err := svc.AddBox(ctx, rewards.TierCommon); err != nil {
		t.Fatalf("add box: %v", err)
	}

	repo.failNext = true
	if _, err := svc.OpenBox(ctx); err == nil {
		t.Fatal("expected error when persistence fails")
	}

	p := svc.Profile()
	if len(p.Boxes) != 1 {
		t.Errorf("boxes = %v, want the box still queued", p.Boxes)
	}
	if p.Points != 0 {
		t.Errorf("points = %d, want 0 (reward must not apply)", p.Points)
	}
}

func TestLeaderboardMirrorsProfiles(t *testing.T) {
	repo := newFakeProfileRepo()
	ctx := context.Background()

	svcA := NewService(repo, fixedRand{})
	if _, err := svcA.Login(ctx, Identity{ID: "a", Name: "Asha"}); err != nil {
		t.Fatalf("login a: %v", err)
	}
	if err := svcA.AddPoints(ctx, 70); err != nil {
		t.Fatalf("add points a: %v", err)
	}
	if _, err := svcA.AddBox(ctx, rewards.TierEpic); err != nil {
		t.Fatalf("add box a: %v", err)
	}

	svcB := NewService(repo, fixedRand{})
	if _, err := svcB.Login(ctx, Identity{ID: "b", Name: "Ben"}); err != nil {
		t.Fatalf("login b: %v", err)
	}
	if err := svcB.AddPoints(ctx, 20); err != nil {
		t.Fatalf("add points b: %v", err)
	}

	entries, err := svcA.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ProfileID != "a" || entries[0].Points != 70 || entries[0].BoxCount != 1 {
		t.Errorf("unexpected top entry: %+v", entries[0])
	}
	if entries[1].ProfileID != "b" || entries[1].Points != 20 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
