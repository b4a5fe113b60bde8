package rewards

// Tier is the reward-pool category of a mystery box.
type Tier string

const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
)

// AllTiers returns all tiers in order from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierCommon, TierRare, TierEpic, TierLegendary}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierCommon:
		return "Common"
	case TierRare:
		return "Rare"
	case TierEpic:
		return "Epic"
	case TierLegendary:
		return "Legendary"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Tier) Icon() string {
	switch t {
	case TierCommon:
		return "📦"
	case TierRare:
		return "🎁"
	case TierEpic:
		return "💠"
	case TierLegendary:
		return "👑"
	default:
		return "◆"
	}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierCommon, TierRare, TierEpic, TierLegendary:
		return true
	}
	return false
}
