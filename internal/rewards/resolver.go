package rewards

// Rand is the source of randomness for reward selection. *rand.Rand from
// math/rand/v2 satisfies it; tests supply scripted values.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// pools holds the fixed reward pool for each tier. Selection is uniform
// over the pool, so pool order carries no weight.
var pools = map[Tier][]Reward{
	TierCommon: {
		{Tier: TierCommon, Description: "+20 points", Points: 20},
		{Tier: TierCommon, Description: "A fun fact about your topic"},
		{Tier: TierCommon, Description: "Hint token"},
	},
	TierRare: {
		{Tier: TierRare, Description: "+50 points", Points: 50},
		{Tier: TierRare, Description: "A fun fact about your topic"},
		{Tier: TierRare, Description: "Avatar flair"},
	},
	TierEpic: {
		{Tier: TierEpic, Description: "+120 points", Points: 120},
		{Tier: TierEpic, Description: "Golden card back"},
		{Tier: TierEpic, Description: "Avatar flair"},
	},
	TierLegendary: {
		{Tier: TierLegendary, Description: "+300 points", Points: 300},
		{Tier: TierLegendary, Description: "Animated card back"},
		{Tier: TierLegendary, Description: "Golden card back"},
	},
}

// Pool returns the reward pool for a tier. Unknown tiers fall back to the
// common pool.
func Pool(tier Tier) []Reward {
	if p, ok := pools[tier]; ok {
		return p
	}
	return pools[TierCommon]
}

// Resolver selects rewards from tier pools.
type Resolver struct {
	rng Rand
}

// NewResolver creates a Resolver drawing from the given random source.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve picks one reward uniformly at random from the tier's pool.
func (r *Resolver) Resolve(tier Tier) Reward {
	pool := Pool(tier)
	return pool[r.rng.IntN(len(pool))]
}
