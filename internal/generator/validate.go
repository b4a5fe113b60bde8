package generator

import "fmt"

// validateItems structurally checks a generated batch. The provider stack
// has already enforced the JSON schema; this catches semantic gaps the
// schema cannot express (empty batches, short batches, index bounds,
// duplicate matching terms).
func validateItems(kind Kind, items []Item, want int) error {
	if len(items) == 0 {
		return &ErrInvalidOutput{Kind: kind, Reason: "no items generated"}
	}
	if len(items) < want {
		return &ErrInvalidOutput{
			Kind:   kind,
			Reason: fmt.Sprintf("got %d items, wanted %d", len(items), want),
		}
	}
	// Extras beyond the requested count are trimmed by the caller; only
	// the items a session will use need to pass.
	items = items[:want]

	for i, item := range items {
		if err := validateItem(kind, item); err != nil {
			return &ErrInvalidOutput{Kind: kind, Reason: fmt.Sprintf("item %d: %v", i, err)}
		}
	}

	if kind == KindMatching {
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if seen[item.Term] {
				return &ErrInvalidOutput{Kind: kind, Reason: fmt.Sprintf("duplicate term %q", item.Term)}
			}
			seen[item.Term] = true
		}
	}
	return nil
}

func validateItem(kind Kind, item Item) error {
	switch kind {
	case KindMultipleChoice:
		if item.Prompt == "" {
			return fmt.Errorf("empty question")
		}
		if len(item.Options) != 4 {
			return fmt.Errorf("%d options, want 4", len(item.Options))
		}
		if item.CorrectIndex < 0 || item.CorrectIndex > 3 {
			return fmt.Errorf("correct index %d out of range", item.CorrectIndex)
		}
	case KindTrueFalse:
		if item.Prompt == "" {
			return fmt.Errorf("empty statement")
		}
	case KindMatching:
		if item.Term == "" || item.Definition == "" {
			return fmt.Errorf("empty term or definition")
		}
	default:
		if item.Prompt == "" {
			return fmt.Errorf("empty question")
		}
		if item.Answer == "" {
			return fmt.Errorf("empty answer")
		}
	}
	return nil
}
