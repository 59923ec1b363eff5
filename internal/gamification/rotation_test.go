package gamification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testQuestPool(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("quest-%02d", i)
	}
	return ids
}

func TestWeekIndex(t *testing.T) {
	assert.Equal(t, 0, WeekIndex(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, WeekIndex(time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 1, WeekIndex(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 52, WeekIndex(time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC)))

	// Before the epoch clamps to week 0 rather than going negative
	assert.Equal(t, 0, WeekIndex(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPickWeeklyQuests_DeterministicWithinWeek(t *testing.T) {
	pool := testQuestPool(40)

	monday := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 9, 22, 30, 0, 0, time.UTC)

	first := PickWeeklyQuests(pool, monday)
	second := PickWeeklyQuests(pool, sunday)

	assert.Len(t, first, WeeklyQuestCount)
	assert.Equal(t, first, second, "same week must yield identical ordered selection")
}

func TestPickWeeklyQuests_ChangesAcrossWeeks(t *testing.T) {
	pool := testQuestPool(40)

	differs := false
	base := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	baseline := PickWeeklyQuests(pool, base)
	for w := 1; w <= 8; w++ {
		next := PickWeeklyQuests(pool, base.AddDate(0, 0, 7*w))
		if !assert.ObjectsAreEqual(baseline, next) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "rotation should not be stuck on one selection across weeks")
}

func TestPickWeeklyQuests_DoesNotMutatePool(t *testing.T) {
	pool := testQuestPool(10)
	snapshot := make([]string, len(pool))
	copy(snapshot, pool)

	PickWeeklyQuests(pool, time.Now())
	assert.Equal(t, snapshot, pool)
}

func TestPickWeeklyQuests_SmallPool(t *testing.T) {
	pool := testQuestPool(3)
	picked := PickWeeklyQuests(pool, time.Now())
	assert.Len(t, picked, 3)
	assert.ElementsMatch(t, pool, picked)
}
