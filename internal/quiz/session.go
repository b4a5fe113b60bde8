package quiz

import (
	"errors"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

// ErrGenerationInFlight is returned when a generation request arrives while
// one is already outstanding for the session.
var ErrGenerationInFlight = errors.New("question generation already in progress")

// Status is the generation state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ItemState tracks the answer state of a single question. The first answer
// locks the item; Correct is meaningless until Answered is true.
type ItemState struct {
	Answered bool
	Correct  bool
}

// Session is the state machine for one exercise type's quiz run. A session
// cycles Idle → Loading → Ready → Idle (reset / new topic), or Loading →
// Failed when generation errors. Loading is the only state that rejects new
// generation requests; a Failed session stays local to its exercise type.
type Session struct {
	Kind   generator.Kind
	Topic  string
	Status Status
	Items  []generator.Item
	States []ItemState
	Err    error

	tracker *completion.Tracker
}

// NewSession creates an idle session for the given exercise kind.
func NewSession(kind generator.Kind) *Session {
	return &Session{Kind: kind, Status: StatusIdle}
}

// Begin moves the session into Loading for a new topic. All prior question
// state is discarded. Returns ErrGenerationInFlight if a request is already
// outstanding.
func (s *Session) Begin(topic string) error {
	if s.Status == StatusLoading {
		return ErrGenerationInFlight
	}
	s.Topic = topic
	s.Status = StatusLoading
	s.Items = nil
	s.States = nil
	s.Err = nil
	s.tracker = nil
	return nil
}

// Ready installs generated items and moves the session to Ready. Every item
// starts unanswered. The tracker receives one Record per first answer.
func (s *Session) Ready(items []generator.Item, tracker *completion.Tracker) {
	s.Status = StatusReady
	s.Items = items
	s.States = make([]ItemState, len(items))
	s.Err = nil
	s.tracker = tracker
}

// Fail moves the session to Failed. The failure does not touch the profile
// or any other session.
func (s *Session) Fail(err error) {
	s.Status = StatusFailed
	s.Err = err
	s.Items = nil
	s.States = nil
	s.tracker = nil
}

// Reset returns the session to Idle, dropping all question state.
func (s *Session) Reset() {
	s.Status = StatusIdle
	s.Topic = ""
	s.Items = nil
	s.States = nil
	s.Err = nil
	s.tracker = nil
}

// Tracker returns the completion tracker for the current run, nil outside
// Ready.
func (s *Session) Tracker() *completion.Tracker {
	return s.tracker
}

// AllAnswered reports whether every item has been answered.
func (s *Session) AllAnswered() bool {
	if len(s.States) == 0 {
		return false
	}
	for _, st := range s.States {
		if !st.Answered {
			return false
		}
	}
	return true
}

// record locks item i with the evaluated result and feeds the tracker.
// If the item was already answered the stored result is returned and
// nothing is recorded: the first answer is authoritative.
func (s *Session) record(i int, correct bool) (bool, bool) {
	if s.Status != StatusReady || i < 0 || i >= len(s.States) {
		return false, false
	}
	if s.States[i].Answered {
		return s.States[i].Correct, false
	}
	s.States[i] = ItemState{Answered: true, Correct: correct}
	if s.tracker != nil {
		s.tracker.Record(correct)
	}
	return correct, true
}

// AnswerChoice answers a multiple-choice item with the selected option
// index. Returns the result and whether this answer was the scoring one.
func (s *Session) AnswerChoice(i, selected int) (correct, scored bool) {
	if i < 0 || i >= len(s.Items) {
		return false, false
	}
	return s.record(i, selected == s.Items[i].CorrectIndex)
}

// AnswerBool answers a true/false item.
func (s *Session) AnswerBool(i int, value bool) (correct, scored bool) {
	if i < 0 || i >= len(s.Items) {
		return false, false
	}
	return s.record(i, value == s.Items[i].IsTrue)
}

// AnswerText answers a fill-in-the-blank item. Comparison is
// case-insensitive with surrounding whitespace ignored.
func (s *Session) AnswerText(i int, text string) (correct, scored bool) {
	if i < 0 || i >= len(s.Items) {
		return false, false
	}
	return s.record(i, TextMatches(text, s.Items[i].Answer))
}
