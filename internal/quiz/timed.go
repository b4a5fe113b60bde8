package quiz

import (
	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

// TimedSessionSeconds is the countdown length for a timed round.
const TimedSessionSeconds = 30

// TimedSession is a fill-in-the-blank round under a countdown. The owner
// schedules a 1-second tick and calls Tick; when the countdown reaches zero
// every unanswered item is locked and scored incorrect, and all input is
// rejected. The owner must stop ticking a session it has replaced or torn
// down so a stale tick can never complete a new session's run.
type TimedSession struct {
	*Session

	Remaining int
	Expired   bool
}

// NewTimedSession creates an idle timed session.
func NewTimedSession() *TimedSession {
	return &TimedSession{Session: NewSession(generator.KindTimed)}
}

// Ready installs generated items and restarts the countdown.
func (t *TimedSession) Ready(items []generator.Item, tracker *completion.Tracker) {
	t.Session.Ready(items, tracker)
	t.Remaining = TimedSessionSeconds
	t.Expired = false
}

// Reset returns the session to Idle and stops the countdown state.
func (t *TimedSession) Reset() {
	t.Session.Reset()
	t.Remaining = 0
	t.Expired = false
}

// Tick advances the countdown by one interval. On reaching zero it forces
// the session complete: unanswered items lock as incorrect (feeding the
// tracker so completion fires through the normal path) and Expired flips.
// Returns true once the session has expired. Ticks outside Ready or after
// expiry are no-ops.
func (t *TimedSession) Tick() bool {
	if t.Status != StatusReady || t.Expired {
		return t.Expired
	}
	if t.Remaining > 0 {
		t.Remaining--
	}
	if t.Remaining == 0 {
		t.expire()
	}
	return t.Expired
}

// AnswerText answers item i unless the countdown has expired.
func (t *TimedSession) AnswerText(i int, text string) (correct, scored bool) {
	if t.Expired {
		return false, false
	}
	return t.Session.AnswerText(i, text)
}

func (t *TimedSession) expire() {
	t.Expired = true
	for i := range t.States {
		if !t.States[i].Answered {
			t.record(i, false)
		}
	}
}
