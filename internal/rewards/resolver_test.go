package rewards

import "testing"

// scriptedRand returns preset values in order, repeating the last one.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func TestPoolsCoverAllTiers(t *testing.T) {
	for _, tier := range AllTiers() {
		pool := Pool(tier)
		if len(pool) == 0 {
			t.Errorf("tier %s has an empty pool", tier)
		}
		hasPoints := false
		for _, rw := range pool {
			if rw.Tier != tier {
				t.Errorf("tier %s pool contains reward tagged %s", tier, rw.Tier)
			}
			if rw.Points > 0 {
				hasPoints = true
			}
		}
		if !hasPoints {
			t.Errorf("tier %s pool has no point reward", tier)
		}
	}
}

func TestPoolUnknownTierFallsBackToCommon(t *testing.T) {
	pool := Pool(Tier("mythic"))
	if len(pool) != len(Pool(TierCommon)) {
		t.Error("unknown tier should fall back to the common pool")
	}
}

func TestResolvePicksByIndex(t *testing.T) {
	pool := Pool(TierCommon)
	for i := range pool {
		r := NewResolver(&scriptedRand{ints: []int{i}})
		got := r.Resolve(TierCommon)
		if got != pool[i] {
			t.Errorf("draw %d: got %+v, want %+v", i, got, pool[i])
		}
	}
}

func TestResolveCommonPointReward(t *testing.T) {
	r := NewResolver(&scriptedRand{ints: []int{0}})
	reward := r.Resolve(TierCommon)
	if reward.Points != 20 {
		t.Errorf("common point reward = %d, want 20", reward.Points)
	}
	if reward.Tier != TierCommon {
		t.Errorf("reward tier = %s, want common", reward.Tier)
	}
}
