// Package gamification holds the pure computational core of IronMatch:
// rank derivation from lift totals, bodyweight-relative strength scoring,
// duel fairness classification and the deterministic weekly quest rotation.
// Nothing in here touches the database or the clock globals; everything is
// a function of its inputs.
package gamification

// Tier is the coarse classification grouping several named ranks.
type Tier int

const (
	TierBelowAverage Tier = iota
	TierAverage
	TierAboveAverage
)

func (t Tier) String() string {
	switch t {
	case TierAverage:
		return "average"
	case TierAboveAverage:
		return "above_average"
	default:
		return "below_average"
	}
}

// LiftProfile is a lifter's big-4 one-rep maxima in pounds. Zero values are
// valid (new user who hasn't logged lifts yet).
type LiftProfile struct {
	Bench         float64 `json:"bench"`
	Squat         float64 `json:"squat"`
	Deadlift      float64 `json:"deadlift"`
	OverheadPress float64 `json:"overheadPress"`
}

// Total is the sum of the four lifts, the input to rank derivation.
func (p LiftProfile) Total() float64 {
	return p.Bench + p.Squat + p.Deadlift + p.OverheadPress
}

// Rank is an immutable catalog entry. Ranks are derived from a LiftProfile
// on demand, never stored.
type Rank struct {
	Name        string  `json:"name"`
	Tier        Tier    `json:"tier"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Threshold   float64 `json:"threshold"` // minimum big-4 total in lbs
	Description string  `json:"description"`
}

// Ranks is the fixed catalog, ordered by ascending threshold. The first
// entry has threshold 0 so every profile maps to a rank.
var Ranks = []Rank{
	{"Novice", TierBelowAverage, "seedling", "#9ca3af", 0, "Everyone starts somewhere. Log your first lifts."},
	{"Beginner", TierBelowAverage, "dumbbell", "#a3e635", 200, "The bar is no longer empty."},
	{"Apprentice", TierBelowAverage, "hammer", "#4ade80", 400, "Building the base, plate by plate."},
	{"Contender", TierAverage, "swords", "#38bdf8", 600, "Strong enough to be taken seriously."},
	{"Athlete", TierAverage, "medal", "#818cf8", 800, "Above the gym-floor average."},
	{"Gladiator", TierAverage, "shield", "#c084fc", 1000, "Crowds part when you load the bar."},
	{"Warrior", TierAboveAverage, "flame", "#fb923c", 1200, "Elite territory begins here."},
	{"Titan", TierAboveAverage, "mountain", "#f87171", 1400, "The plates bend before you do."},
	{"Demigod", TierAboveAverage, "zap", "#facc15", 1600, "Rarefied air. Few ever total this."},
	{"Legend", TierAboveAverage, "crown", "#fde047", 1800, "Your name is written on the gym wall."},
}

// CurrentRank returns the highest-threshold catalog entry whose threshold
// does not exceed the profile's total. Never fails: the floor entry
// qualifies for any total.
func CurrentRank(p LiftProfile) Rank {
	total := p.Total()
	for i := len(Ranks) - 1; i >= 0; i-- {
		if total >= Ranks[i].Threshold {
			return Ranks[i]
		}
	}
	return Ranks[0]
}

// NextRank returns the catalog entry after the current one, or false if the
// profile already holds the top rank.
func NextRank(p LiftProfile) (Rank, bool) {
	total := p.Total()
	for i := len(Ranks) - 1; i >= 0; i-- {
		if total >= Ranks[i].Threshold {
			if i == len(Ranks)-1 {
				return Rank{}, false
			}
			return Ranks[i+1], true
		}
	}
	return Ranks[0], true
}

// ProgressPercent linearly interpolates the total between the current and
// next rank thresholds, clamped to [0,100]. At the top rank it is 100.
func ProgressPercent(p LiftProfile) float64 {
	current := CurrentRank(p)
	next, ok := NextRank(p)
	if !ok {
		return 100
	}

	pct := (p.Total() - current.Threshold) / (next.Threshold - current.Threshold) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RankIndex returns the catalog position of a named rank, or -1 if unknown.
// Used by the cosmetic gate to compare rank requirements in catalog order.
func RankIndex(name string) int {
	for i, r := range Ranks {
		if r.Name == name {
			return i
		}
	}
	return -1
}
