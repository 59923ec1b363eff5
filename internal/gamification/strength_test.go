package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeStrength(t *testing.T) {
	// 200 lbs at 90.7 kg bodyweight: 200*0.453592/90.7 ≈ 1.00
	assert.InDelta(t, 1.00, RelativeStrength(200, 90.7), 0.001)

	// Zero lift is zero regardless of bodyweight
	assert.Equal(t, 0.0, RelativeStrength(0, 75))
	assert.Equal(t, 0.0, RelativeStrength(0, 120))
}

func TestDuelScore(t *testing.T) {
	assert.Equal(t, 100, DuelScore(200, 90.7))
	assert.Equal(t, 0, DuelScore(0, 80))
}

func TestDuelScore_MonotonicInLift(t *testing.T) {
	prev := -1
	for lift := 0.0; lift <= 600; lift += 5 {
		score := DuelScore(lift, 82.5)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestCheckFairness_Thresholds(t *testing.T) {
	// Same lifter on both sides: spread 0
	label, spread := CheckFairness(225, 80, 225, 80)
	assert.Equal(t, FairnessFair, label)
	assert.Equal(t, 0.0, spread)

	// Scores 100 vs 130: spread 30/115 ≈ 0.26 → slight advantage
	label, spread = CheckFairness(200, 90.7, 260, 90.7)
	assert.Equal(t, FairnessSlight, label)
	assert.InDelta(t, 0.26, spread, 0.01)

	// Scores far apart → unfair
	label, _ = CheckFairness(100, 90.7, 300, 90.7)
	assert.Equal(t, FairnessUnfair, label)
}

func TestCheckFairness_BothZeroIsFair(t *testing.T) {
	label, spread := CheckFairness(0, 80, 0, 95)
	assert.Equal(t, FairnessFair, label)
	assert.Equal(t, 0.0, spread)
}

func TestCheckFairness_Symmetric(t *testing.T) {
	cases := [][4]float64{
		{200, 90.7, 260, 90.7},
		{100, 60, 300, 110},
		{0, 80, 150, 70},
		{315, 100, 320, 98},
	}

	for _, c := range cases {
		forward, _ := CheckFairness(c[0], c[1], c[2], c[3])
		reverse, _ := CheckFairness(c[2], c[3], c[0], c[1])
		assert.Equal(t, forward, reverse)
	}
}
