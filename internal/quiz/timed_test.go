package quiz

import (
	"testing"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

func timedItems() []generator.Item {
	return []generator.Item{
		{Kind: generator.KindTimed, Prompt: "2+2?", Answer: "4"},
		{Kind: generator.KindTimed, Prompt: "Capital of Italy?", Answer: "Rome"},
	}
}

func TestTimedCountdownExpiryLocksUnanswered(t *testing.T) {
	fired := 0
	var final completion.Score
	tracker := completion.NewTracker(2, func(s completion.Score) {
		fired++
		final = s
	})

	ts := NewTimedSession()
	ts.Begin("mixed")
	ts.Ready(timedItems(), tracker)

	if ts.Remaining != TimedSessionSeconds {
		t.Fatalf("remaining = %d, want %d", ts.Remaining, TimedSessionSeconds)
	}

	ts.AnswerText(0, "4")

	// Run the countdown to zero with the second item unanswered.
	for i := 0; i < TimedSessionSeconds; i++ {
		ts.Tick()
	}

	if !ts.Expired {
		t.Fatal("session did not expire at zero")
	}
	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
	if final.Correct != 1 || final.Answered != 2 {
		t.Errorf("final score = %+v, want 1 of 2 (unanswered scored incorrect)", final)
	}
	if !ts.States[1].Answered || ts.States[1].Correct {
		t.Error("unanswered item not locked incorrect on expiry")
	}

	// Input is disabled after expiry.
	if _, scored := ts.AnswerText(1, "Rome"); scored {
		t.Error("expired session accepted an answer")
	}

	// Further ticks are no-ops.
	ts.Tick()
	if fired != 1 {
		t.Errorf("stale tick re-fired completion: %d times", fired)
	}
}

func TestTimedAnswersBeforeExpiryScoreNormally(t *testing.T) {
	fired := 0
	tracker := completion.NewTracker(2, func(completion.Score) { fired++ })

	ts := NewTimedSession()
	ts.Begin("mixed")
	ts.Ready(timedItems(), tracker)

	ts.Tick()
	ts.Tick()
	if ts.Remaining != TimedSessionSeconds-2 {
		t.Errorf("remaining = %d, want %d", ts.Remaining, TimedSessionSeconds-2)
	}

	if correct, _ := ts.AnswerText(0, " 4 "); !correct {
		t.Error("trimmed answer judged wrong")
	}
	if correct, _ := ts.AnswerText(1, "rome"); !correct {
		t.Error("case-folded answer judged wrong")
	}

	if fired != 1 {
		t.Errorf("completion fired %d times, want 1", fired)
	}
	if ts.Expired {
		t.Error("session expired with time remaining")
	}
}

func TestTimedTickOutsideReadyIsNoop(t *testing.T) {
	ts := NewTimedSession()
	if ts.Tick() {
		t.Error("idle session reported expiry")
	}
	ts.Begin("mixed")
	if ts.Tick() {
		t.Error("loading session reported expiry")
	}

	// A reset session must not expire from stale ticks.
	ts.Ready(timedItems(), completion.NewTracker(2, nil))
	ts.Reset()
	if ts.Tick() {
		t.Error("reset session reported expiry")
	}
}
