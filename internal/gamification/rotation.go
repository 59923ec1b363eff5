package gamification

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"
)

// WeeklyQuestCount is the size of the active rotation.
const WeeklyQuestCount = 5

// rotationEpoch anchors the week index. Monday 2024-01-01 00:00 UTC, so
// rotations flip at the start of the UTC week.
var rotationEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// WeekIndex is the number of whole weeks elapsed since the rotation epoch.
// Every client computing the index within the same week gets the same value.
func WeekIndex(now time.Time) int {
	elapsed := now.UTC().Sub(rotationEpoch)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (7 * 24 * time.Hour))
}

// rotationKey derives a stable per-quest ordering key for a given week.
// FNV-1a over "week:questID"; any well-distributed deterministic hash works
// here, the only requirement is that all clients agree.
func rotationKey(week int, questID string) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", week, questID)
	return h.Sum64()
}

// PickWeeklyQuests deterministically selects the active rotation from the
// public quest id pool for the week containing now. Same week and same pool
// always yield the same ids in the same order. Quest id breaks hash ties so
// the order is total.
func PickWeeklyQuests(publicQuestIDs []string, now time.Time) []string {
	week := WeekIndex(now)

	ids := make([]string, len(publicQuestIDs))
	copy(ids, publicQuestIDs)

	sort.Slice(ids, func(i, j int) bool {
		ki, kj := rotationKey(week, ids[i]), rotationKey(week, ids[j])
		if ki != kj {
			return ki < kj
		}
		return ids[i] < ids[j]
	})

	if len(ids) > WeeklyQuestCount {
		ids = ids[:WeeklyQuestCount]
	}
	return ids
}
