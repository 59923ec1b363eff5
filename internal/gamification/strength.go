package gamification

import "math"

// LbsToKg converts pound lift values to kilograms. Lift inputs are pounds,
// bodyweight is kilograms; the unit boundary is fixed here rather than
// guessed per caller.
const LbsToKg = 0.453592

// Fairness classifies a duel matchup. Advisory only: an unfair matchup
// never blocks duel creation.
type Fairness string

const (
	FairnessFair   Fairness = "fair matchup"
	FairnessSlight Fairness = "slight advantage"
	FairnessUnfair Fairness = "unfair matchup"
)

// RelativeStrength normalizes an absolute lift (lbs) against bodyweight (kg),
// rounded to two decimals. Bodyweight must be positive; callers with no
// stored bodyweight must treat the score as unavailable instead of calling
// this with a zero divisor.
func RelativeStrength(liftLbs, bodyweightKg float64) float64 {
	return math.Round(liftLbs*LbsToKg/bodyweightKg*100) / 100
}

// DuelScore is relative strength scaled to comparable integer points.
func DuelScore(liftLbs, bodyweightKg float64) int {
	return int(math.Round(liftLbs * LbsToKg / bodyweightKg * 100))
}

// CheckFairness compares two duel scores. The spread is the absolute score
// difference over the average score; when both scores are zero the spread
// is zero (fair) rather than a division by zero.
//
// spread < 0.15 fair, < 0.30 slight advantage, otherwise unfair.
// Symmetric in its arguments.
func CheckFairness(challengerLiftLbs, challengerBwKg, opponentLiftLbs, opponentBwKg float64) (Fairness, float64) {
	a := float64(DuelScore(challengerLiftLbs, challengerBwKg))
	b := float64(DuelScore(opponentLiftLbs, opponentBwKg))

	avg := (a + b) / 2
	if avg == 0 {
		return FairnessFair, 0
	}

	spread := math.Abs(a-b) / avg
	switch {
	case spread < 0.15:
		return FairnessFair, spread
	case spread < 0.30:
		return FairnessSlight, spread
	default:
		return FairnessUnfair, spread
	}
}
