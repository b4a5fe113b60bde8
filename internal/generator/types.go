package generator

// Kind identifies an exercise type. Each kind has its own session screen
// and its own answer evaluation rules.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindFillBlank      Kind = "fill_blank"
	KindMatching       Kind = "matching"
	KindTimed          Kind = "timed"
)

// AllKinds returns all exercise kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindTrueFalse, KindFillBlank, KindMatching, KindTimed}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindTrueFalse:
		return "True or False"
	case KindFillBlank:
		return "Fill in the Blank"
	case KindMatching:
		return "Matching Pairs"
	case KindTimed:
		return "Timed Round"
	default:
		return string(k)
	}
}

// Item is a single generated question. The populated fields depend on Kind:
//
//   - KindMultipleChoice: Prompt, Options (exactly 4), CorrectIndex
//   - KindTrueFalse:      Prompt (the statement), IsTrue
//   - KindFillBlank:      Prompt, Answer
//   - KindTimed:          same as KindFillBlank
//   - KindMatching:       Term, Definition (one pair per item)
//
// Items are immutable once generated.
type Item struct {
	Kind Kind

	Prompt       string
	Options      []string
	CorrectIndex int
	IsTrue       bool
	Answer       string
	Term         string
	Definition   string
}
