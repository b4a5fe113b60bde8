package badges

import (
	"slices"
	"testing"
)

func TestEvaluateThresholds(t *testing.T) {
	defs := Definitions()

	tests := []struct {
		points int
		want   []string
	}{
		{0, []string{"Initiate"}},
		{10, []string{"Initiate"}},
		{49, []string{"Initiate"}},
		{50, []string{"Initiate", "Explorer"}},
		{55, []string{"Initiate", "Explorer"}},
		{150, []string{"Initiate", "Explorer", "Scholar"}},
		{299, []string{"Initiate", "Explorer", "Scholar"}},
		{300, []string{"Initiate", "Explorer", "Scholar", "Sage"}},
		{10000, []string{"Initiate", "Explorer", "Scholar", "Sage"}},
	}

	for _, tt := range tests {
		got := Evaluate(tt.points, defs)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Evaluate(%d) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	defs := Definitions()

	prev := Evaluate(0, defs)
	for points := 1; points <= 400; points++ {
		cur := Evaluate(points, defs)
		for _, name := range prev {
			if !slices.Contains(cur, name) {
				t.Fatalf("badge %q earned at %d points but lost at %d", name, points-1, points)
			}
		}
		prev = cur
	}
}

func TestEvaluateEmptyDefs(t *testing.T) {
	if got := Evaluate(100, nil); got != nil {
		t.Errorf("Evaluate with no definitions = %v, want nil", got)
	}
}
