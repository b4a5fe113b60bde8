package quiz

import (
	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

// ShuffledDefinition is a definition presented out of term order.
// TermIndex points back at the item (term) it belongs to.
type ShuffledDefinition struct {
	Text      string
	TermIndex int
}

// MatchingSession runs a matching-pairs exercise: the learner selects a
// term, then a definition. A term's first attempt is the one that scores;
// a wrong attempt leaves the term selectable, and only a correct attempt
// locks the term and definition as matched.
type MatchingSession struct {
	*Session

	Definitions  []ShuffledDefinition
	MatchedTerms []bool
	MatchedDefs  []bool

	// SelectedTerm is the term awaiting a definition pick, -1 when none.
	SelectedTerm int
}

// NewMatchingSession creates an idle matching session.
func NewMatchingSession() *MatchingSession {
	return &MatchingSession{
		Session:      NewSession(generator.KindMatching),
		SelectedTerm: -1,
	}
}

// Shuffler provides the permutation source for definition order.
type Shuffler interface {
	IntN(n int) int
}

// Ready installs the generated pairs, presenting definitions in a shuffled
// order so position gives nothing away.
func (m *MatchingSession) Ready(items []generator.Item, tracker *completion.Tracker, shuffler Shuffler) {
	m.Session.Ready(items, tracker)

	m.Definitions = make([]ShuffledDefinition, len(items))
	for i, item := range items {
		m.Definitions[i] = ShuffledDefinition{Text: item.Definition, TermIndex: i}
	}
	if shuffler != nil {
		for i := len(m.Definitions) - 1; i > 0; i-- {
			j := shuffler.IntN(i + 1)
			m.Definitions[i], m.Definitions[j] = m.Definitions[j], m.Definitions[i]
		}
	}

	m.MatchedTerms = make([]bool, len(items))
	m.MatchedDefs = make([]bool, len(items))
	m.SelectedTerm = -1
}

// SelectTerm begins an attempt on term i. Matched terms are locked and
// cannot be reselected.
func (m *MatchingSession) SelectTerm(i int) bool {
	if m.Status != StatusReady || i < 0 || i >= len(m.Items) {
		return false
	}
	if m.MatchedTerms[i] {
		return false
	}
	m.SelectedTerm = i
	return true
}

// SelectDefinition completes the attempt against definition j. The attempt
// is correct when the shuffled definition's original index equals the
// selected term's index. The term's first attempt feeds the tracker; later
// attempts can still complete the match but never re-score.
func (m *MatchingSession) SelectDefinition(j int) (correct, scored bool) {
	if m.Status != StatusReady || m.SelectedTerm < 0 || j < 0 || j >= len(m.Definitions) {
		return false, false
	}
	if m.MatchedDefs[j] {
		return false, false
	}

	term := m.SelectedTerm
	m.SelectedTerm = -1
	correct = m.Definitions[j].TermIndex == term

	scored = false
	if !m.States[term].Answered {
		_, scored = m.record(term, correct)
	}

	if correct {
		m.MatchedTerms[term] = true
		m.MatchedDefs[j] = true
	}
	return correct, scored
}

// AllMatched reports whether every pair has been locked as matched.
func (m *MatchingSession) AllMatched() bool {
	if len(m.MatchedTerms) == 0 {
		return false
	}
	for _, matched := range m.MatchedTerms {
		if !matched {
			return false
		}
	}
	return true
}
