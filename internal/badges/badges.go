package badges

// Definition pairs a badge name with the point total that unlocks it.
type Definition struct {
	Name      string
	Threshold int
}

// defaults is the badge ladder, ordered by threshold ascending.
var defaults = []Definition{
	{Name: "Initiate", Threshold: 0},
	{Name: "Explorer", Threshold: 50},
	{Name: "Scholar", Threshold: 150},
	{Name: "Sage", Threshold: 300},
}

// Definitions returns the badge ladder in ascending threshold order.
func Definitions() []Definition {
	out := make([]Definition, len(defaults))
	copy(out, defaults)
	return out
}

// Evaluate returns the names of every badge whose threshold the given point
// total meets, in ladder order. It is pure and recomputed in full on each
// call so the result always reflects the current total exactly.
func Evaluate(points int, defs []Definition) []string {
	var earned []string
	for _, d := range defs {
		if points >= d.Threshold {
			earned = append(earned, d.Name)
		}
	}
	return earned
}
