package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentRank_FloorForEmptyProfile(t *testing.T) {
	rank := CurrentRank(LiftProfile{})
	assert.Equal(t, "Novice", rank.Name)
	assert.Equal(t, float64(0), rank.Threshold)
}

func TestCurrentRank_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  string
	}{
		{"just below contender", 599, "Apprentice"},
		{"exactly contender", 600, "Contender"},
		{"just above contender", 601, "Contender"},
		{"exactly athlete", 800, "Athlete"},
		{"top rank", 1800, "Legend"},
		{"beyond top rank", 5000, "Legend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Spread the total over one lift; only the sum matters.
			p := LiftProfile{Deadlift: tt.total}
			assert.Equal(t, tt.want, CurrentRank(p).Name)
		})
	}
}

func TestCurrentRank_TotalAlwaysAtOrAboveThreshold(t *testing.T) {
	for total := 0.0; total <= 2200; total += 37 {
		p := LiftProfile{Squat: total}
		rank := CurrentRank(p)
		assert.GreaterOrEqual(t, p.Total(), rank.Threshold)

		if next, ok := NextRank(p); ok {
			assert.Less(t, p.Total(), next.Threshold)
		}
	}
}

func TestNextRank(t *testing.T) {
	p := LiftProfile{Bench: 185, Squat: 225, Deadlift: 275, OverheadPress: 95} // total 780
	assert.Equal(t, "Contender", CurrentRank(p).Name)

	next, ok := NextRank(p)
	assert.True(t, ok)
	assert.Equal(t, "Athlete", next.Name)
	assert.Equal(t, float64(800), next.Threshold)
}

func TestNextRank_NoneAtTop(t *testing.T) {
	_, ok := NextRank(LiftProfile{Deadlift: 2000})
	assert.False(t, ok)
}

func TestProgressPercent_ContenderScenario(t *testing.T) {
	// total 780, Contender at 600, Athlete at 800 => (780-600)/200*100 = 90
	p := LiftProfile{Bench: 185, Squat: 225, Deadlift: 275, OverheadPress: 95}
	assert.InDelta(t, 90.0, ProgressPercent(p), 0.0001)
}

func TestProgressPercent_TopRankIs100(t *testing.T) {
	assert.Equal(t, float64(100), ProgressPercent(LiftProfile{Deadlift: 1800}))
	assert.Equal(t, float64(100), ProgressPercent(LiftProfile{Deadlift: 9999}))
}

func TestProgressPercent_MonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for total := 0.0; total <= 2000; total += 10 {
		pct := ProgressPercent(LiftProfile{Bench: total})
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)

		// Monotonic within a rank band; crossing a threshold resets to 0,
		// so compare only when the rank didn't change.
		if total > 0 && CurrentRank(LiftProfile{Bench: total}).Name == CurrentRank(LiftProfile{Bench: total - 10}).Name {
			assert.GreaterOrEqual(t, pct, prev)
		}
		prev = pct
	}
}

func TestRanks_CatalogOrderedAscending(t *testing.T) {
	for i := 1; i < len(Ranks); i++ {
		assert.Greater(t, Ranks[i].Threshold, Ranks[i-1].Threshold)
	}
	assert.Equal(t, float64(0), Ranks[0].Threshold)
}

func TestRankIndex(t *testing.T) {
	assert.Equal(t, 0, RankIndex("Novice"))
	assert.Equal(t, 3, RankIndex("Contender"))
	assert.Equal(t, -1, RankIndex("Nonexistent"))
}
