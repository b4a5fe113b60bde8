package quiz

import (
	"testing"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

// identityShuffle keeps definitions in term order so tests can reason
// about indices directly.
type identityShuffle struct{}

func (identityShuffle) IntN(n int) int { return n - 1 }

func matchingItems() []generator.Item {
	return []generator.Item{
		{Kind: generator.KindMatching, Term: "mitosis", Definition: "cell division"},
		{Kind: generator.KindMatching, Term: "osmosis", Definition: "diffusion of water"},
		{Kind: generator.KindMatching, Term: "symbiosis", Definition: "living together"},
	}
}

func readyMatching(t *testing.T, tracker *completion.Tracker) *MatchingSession {
	t.Helper()
	m := NewMatchingSession()
	if err := m.Begin("biology"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	m.Ready(matchingItems(), tracker, identityShuffle{})
	return m
}

func TestMatchingShufflePreservesPairs(t *testing.T) {
	m := readyMatching(t, nil)
	if len(m.Definitions) != 3 {
		t.Fatalf("got %d definitions, want 3", len(m.Definitions))
	}
	for _, d := range m.Definitions {
		if m.Items[d.TermIndex].Definition != d.Text {
			t.Errorf("definition %q lost its term link", d.Text)
		}
	}
}

func TestMatchingCorrectAttemptLocksPair(t *testing.T) {
	m := readyMatching(t, nil)

	if !m.SelectTerm(0) {
		t.Fatal("selecting an unmatched term failed")
	}
	j := defIndexFor(m, 0)
	correct, scored := m.SelectDefinition(j)
	if !correct || !scored {
		t.Fatalf("(correct, scored) = (%v, %v), want (true, true)", correct, scored)
	}
	if !m.MatchedTerms[0] || !m.MatchedDefs[j] {
		t.Error("correct attempt did not lock term and definition")
	}
	if m.SelectTerm(0) {
		t.Error("matched term is still selectable")
	}
}

func TestMatchingWrongAttemptLeavesTermSelectable(t *testing.T) {
	tracker := completion.NewTracker(3, nil)
	m := readyMatching(t, tracker)

	m.SelectTerm(0)
	wrong := defIndexFor(m, 1)
	correct, scored := m.SelectDefinition(wrong)
	if correct {
		t.Fatal("mismatched pair judged correct")
	}
	if !scored {
		t.Fatal("first attempt on the term should score")
	}
	if m.MatchedTerms[0] || m.MatchedDefs[wrong] {
		t.Error("wrong attempt locked something")
	}
	if !m.SelectTerm(0) {
		t.Error("term not selectable after a wrong attempt")
	}

	// The retry can complete the match but must not re-score.
	right := defIndexFor(m, 0)
	correct, scored = m.SelectDefinition(right)
	if !correct {
		t.Fatal("matching pair judged wrong")
	}
	if scored {
		t.Error("second attempt on the same term re-scored")
	}

	score := tracker.Score()
	if score.Answered != 1 || score.Correct != 0 {
		t.Errorf("tracker = %+v, want answered=1 correct=0 (first attempt authoritative)", score)
	}
}

func TestMatchingCompletionCountsEachTermOnce(t *testing.T) {
	fired := 0
	var final completion.Score
	tracker := completion.NewTracker(3, func(s completion.Score) {
		fired++
		final = s
	})
	m := readyMatching(t, tracker)

	// Term 0: right first try. Term 1: wrong then right. Term 2: right.
	m.SelectTerm(0)
	m.SelectDefinition(defIndexFor(m, 0))

	m.SelectTerm(1)
	m.SelectDefinition(defIndexFor(m, 2))
	m.SelectTerm(1)
	m.SelectDefinition(defIndexFor(m, 1))

	m.SelectTerm(2)
	m.SelectDefinition(defIndexFor(m, 2))

	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
	if final.Correct != 2 || final.Answered != 3 {
		t.Errorf("final score = %+v, want 2 of 3", final)
	}
	if !m.AllMatched() {
		t.Error("AllMatched = false after matching every pair")
	}
}

func TestMatchingDefinitionWithoutTermIsNoop(t *testing.T) {
	m := readyMatching(t, nil)
	if _, scored := m.SelectDefinition(0); scored {
		t.Error("definition pick without a selected term scored")
	}
}

// defIndexFor finds the shuffled position of the definition for a term.
func defIndexFor(m *MatchingSession, termIndex int) int {
	for j, d := range m.Definitions {
		if d.TermIndex == termIndex {
			return j
		}
	}
	return -1
}
