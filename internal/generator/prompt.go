package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author writing practice questions for an educational quiz app.

Rules:
- Generate exactly the requested number of items about the given topic.
- Use plain text. No markdown, no LaTeX.
- Questions must be self-contained and factually correct.
- Vary difficulty across the batch; no two items may test the same fact.
- For multiple choice: exactly 4 options with exactly one correct. Distractors should be plausible, not random.
- For true/false: write declarative statements, roughly half true and half false across the batch.
- For fill-in-the-blank and timed items: the answer must be a single short word or phrase with one widely accepted spelling.
- For matching pairs: terms must be distinct and each definition must match exactly one term.`

// buildUserMessage constructs the generation request message.
func buildUserMessage(kind Kind, topic string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Exercise type: %s\n", kind.DisplayName())
	fmt.Fprintf(&b, "Number of items: %d\n", count)
	return b.String()
}
