package completion

import (
	"testing"

	"github.com/sahajm/quizdeck/internal/rewards"
)

type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

func TestTrackerFiresExactlyOnce(t *testing.T) {
	// Any interleaving of correct/incorrect answers over N questions must
	// fire the callback once, even with extra ticks at the boundary.
	patterns := [][]bool{
		{true, true, true},
		{false, false, false},
		{true, false, true},
		{false, true, false},
	}

	for _, pattern := range patterns {
		fired := 0
		tr := NewTracker(len(pattern), func(Score) { fired++ })

		for _, correct := range pattern {
			tr.Record(correct)
		}
		// Boundary re-ticks must not re-fire.
		tr.Record(true)
		tr.Record(false)

		if fired != 1 {
			t.Errorf("pattern %v: completion fired %d times, want 1", pattern, fired)
		}
		if !tr.Completed() {
			t.Errorf("pattern %v: tracker not marked completed", pattern)
		}
	}
}

func TestTrackerScore(t *testing.T) {
	var got Score
	tr := NewTracker(3, func(s Score) { got = s })

	tr.Record(true)
	tr.Record(false)
	tr.Record(true)

	want := Score{Correct: 2, Answered: 3, Total: 3}
	if got != want {
		t.Errorf("completion score = %+v, want %+v", got, want)
	}
	if tr.Score() != want {
		t.Errorf("Score() = %+v, want %+v", tr.Score(), want)
	}
}

func TestTrackerZeroQuestionsNeverFires(t *testing.T) {
	fired := 0
	tr := NewTracker(0, func(Score) { fired++ })
	tr.Record(true)
	if fired != 0 {
		t.Errorf("zero-question session fired completion %d times", fired)
	}
}

func TestBonusBoxPerfectAlwaysIssues(t *testing.T) {
	score := Score{Correct: 3, Answered: 3, Total: 3}

	// Perfect issuance must not consult the RNG outcome.
	for _, draw := range []float64{0.0, 0.5, 0.99} {
		tier, ok := BonusBox(score, fixedDraw(draw))
		if !ok {
			t.Fatalf("perfect score with draw %.2f did not issue a box", draw)
		}
		if tier != rewards.TierCommon {
			t.Errorf("perfect bonus tier = %s, want common", tier)
		}
	}
}

func TestBonusBoxPartialScoreUsesProbability(t *testing.T) {
	score := Score{Correct: 2, Answered: 3, Total: 3}

	if _, ok := BonusBox(score, fixedDraw(0.05)); !ok {
		t.Error("draw 0.05 < 0.10 should issue a bonus box")
	}
	if _, ok := BonusBox(score, fixedDraw(0.5)); ok {
		t.Error("draw 0.5 >= 0.10 should not issue a bonus box")
	}
	if _, ok := BonusBox(score, fixedDraw(0.10)); ok {
		t.Error("draw exactly 0.10 should not issue a bonus box")
	}
}
