package completion

import "github.com/sahajm/quizdeck/internal/rewards"

// BonusProbability is the chance of a bonus box on an imperfect completion.
const BonusProbability = 0.10

// Rand supplies the uniform draw for the bonus decision.
type Rand interface {
	Float64() float64
}

// BonusBox decides whether a completed session earns a mystery box.
// A perfect score always earns one; anything else earns one with fixed
// probability on a uniform draw from rng. The box tier is Common in both
// cases. The score report to the caller is unaffected by this decision.
func BonusBox(score Score, rng Rand) (rewards.Tier, bool) {
	if score.Perfect() {
		return rewards.TierCommon, true
	}
	if rng != nil && rng.Float64() < BonusProbability {
		return rewards.TierCommon, true
	}
	return "", false
}
