package quiz

import "testing"

func TestTextMatches(t *testing.T) {
	tests := []struct {
		name    string
		learner string
		answer  string
		want    bool
	}{
		{"exact", "Jupiter", "Jupiter", true},
		{"case insensitive", "jupiter", "JUPITER", true},
		{"surrounding whitespace trimmed", "  jupiter\t", " Jupiter ", true},
		{"internal spacing must match", "ju piter", "jupiter", false},
		{"wrong answer", "Saturn", "Jupiter", false},
		{"blank learner answer", "   ", "Jupiter", false},
		{"both blank", "   ", "\t", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextMatches(tt.learner, tt.answer); got != tt.want {
				t.Errorf("TextMatches(%q, %q) = %v, want %v", tt.learner, tt.answer, got, tt.want)
			}
		})
	}
}
