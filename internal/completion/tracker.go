package completion

// PointsPerCorrect is the ledger credit for each correct answer.
const PointsPerCorrect = 10

// Score is the final tally reported when a session completes.
type Score struct {
	Correct  int
	Answered int
	Total    int
}

// Perfect reports whether every question was answered correctly.
func (s Score) Perfect() bool {
	return s.Total > 0 && s.Correct == s.Total
}

// Tracker aggregates a session's answered/correct counts and fires a
// completion callback exactly once when every question has been answered.
// A fresh Tracker is created for every session.
type Tracker struct {
	total    int
	answered int
	correct  int
	fired    bool

	onComplete func(Score)
}

// NewTracker creates a Tracker for a session of total questions.
// onComplete may be nil.
func NewTracker(total int, onComplete func(Score)) *Tracker {
	return &Tracker{total: total, onComplete: onComplete}
}

// Record counts one answered question. Ticks past the session total are
// ignored, and the completion callback fires on the boundary tick only.
func (t *Tracker) Record(correct bool) {
	if t.answered >= t.total {
		return
	}
	t.answered++
	if correct {
		t.correct++
	}

	if t.answered == t.total && t.total > 0 && !t.fired {
		t.fired = true
		if t.onComplete != nil {
			t.onComplete(t.Score())
		}
	}
}

// Score returns the current tally.
func (t *Tracker) Score() Score {
	return Score{Correct: t.correct, Answered: t.answered, Total: t.total}
}

// Completed reports whether the session has finished.
func (t *Tracker) Completed() bool {
	return t.fired
}
