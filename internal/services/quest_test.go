package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
)

func newQuestFixture(t *testing.T) (*QuestService, *gorm.DB, *fixedClock) {
	db := setupTestDB(t)
	createTestUser(t, db, "lifter")

	clock := &fixedClock{t: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
	svc := NewQuestService(db, nil, nil)
	svc.now = clock.Now
	return svc, db, clock
}

func seedPublicQuests(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		q := models.Quest{
			ID:       fmt.Sprintf("quest-%02d", i),
			Title:    fmt.Sprintf("Quest %d", i),
			Category: models.QuestCategoryConsistency,
			Target:   3,
			XPReward: 25,
		}
		assert.NoError(t, db.Create(&q).Error)
	}
}

func seedHiddenQuest(t *testing.T, db *gorm.DB, id, trigger string) {
	t.Helper()
	q := models.Quest{
		ID:                id,
		Title:             "???",
		Description:       "Hidden until you earn it.",
		Icon:              "lock",
		Category:          models.QuestCategoryHidden,
		Target:            1,
		XPReward:          200,
		Hidden:            true,
		RevealTitle:       "Gym War Hero",
		RevealDescription: "Win a gym war for your home gym.",
		RevealIcon:        "trophy",
		UnlockTrigger:     trigger,
	}
	assert.NoError(t, db.Create(&q).Error)
}

func TestWeeklyQuests_DeterministicSelection(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedPublicQuests(t, db, 12)

	first, err := svc.WeeklyQuests()
	assert.NoError(t, err)
	assert.Len(t, first, 5)

	second, err := svc.WeeklyQuests()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWeeklyQuests_RotatesAcrossWeeks(t *testing.T) {
	svc, db, clock := newQuestFixture(t)
	seedPublicQuests(t, db, 12)

	baseline, err := svc.WeeklyQuests()
	assert.NoError(t, err)

	changed := false
	for w := 0; w < 8 && !changed; w++ {
		clock.Advance(7 * 24 * time.Hour)
		next, err := svc.WeeklyQuests()
		assert.NoError(t, err)
		changed = !assert.ObjectsAreEqual(baseline, next)
	}
	assert.True(t, changed)
}

func TestWeeklyQuests_ExcludesHidden(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedPublicQuests(t, db, 4)
	seedHiddenQuest(t, db, "hidden-war", models.TriggerGymWarWin)

	weekly, err := svc.WeeklyQuests()
	assert.NoError(t, err)
	assert.Len(t, weekly, 4)
	for _, q := range weekly {
		assert.False(t, q.Hidden)
	}
}

func TestIncrement_CompletesOnceAndGrantsXPOnce(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedPublicQuests(t, db, 1) // quest-00, target 3, reward 25

	row, done, err := svc.Increment("lifter", "quest-00", 2)
	assert.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 2, row.Progress)
	assert.Nil(t, row.CompletedAt)

	row, done, err = svc.Increment("lifter", "quest-00", 1)
	assert.NoError(t, err)
	assert.True(t, done)
	assert.NotNil(t, row.CompletedAt)

	var user models.User
	db.First(&user, "id = ?", "lifter")
	assert.Equal(t, 25, user.XP)

	// Progress can keep accumulating but completion never re-grants
	row, done, err = svc.Increment("lifter", "quest-00", 5)
	assert.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 8, row.Progress)

	db.First(&user, "id = ?", "lifter")
	assert.Equal(t, 25, user.XP)
}

func TestIncrement_RejectsBadInput(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedPublicQuests(t, db, 1)

	_, _, err := svc.Increment("lifter", "quest-00", 0)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 400, appErr.Code)

	_, _, err = svc.Increment("lifter", "quest-00", -3)
	assert.Error(t, err)

	_, _, err = svc.Increment("lifter", "no-such-quest", 1)
	appErr = err.(*apperrors.AppError)
	assert.Equal(t, 404, appErr.Code)
}

func TestHiddenQuest_MaskedUntilUnlocked(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedHiddenQuest(t, db, "hidden-war", models.TriggerGymWarWin)

	views, err := svc.VisibleQuests("lifter")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.False(t, views[0].Unlocked)
	assert.Equal(t, "???", views[0].Title)

	// Locked hidden quests reject progress
	_, _, err = svc.Increment("lifter", "hidden-war", 1)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, 403, appErr.Code)

	revealed, err := svc.UnlockHidden("lifter", models.TriggerGymWarWin)
	assert.NoError(t, err)
	assert.Len(t, revealed, 1)

	// The reveal record replaces the placeholder
	views, err = svc.VisibleQuests("lifter")
	assert.NoError(t, err)
	assert.True(t, views[0].Unlocked)
	assert.Equal(t, "Gym War Hero", views[0].Title)
	assert.Equal(t, "trophy", views[0].Icon)

	// And progress is now accepted
	_, done, err := svc.Increment("lifter", "hidden-war", 1)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestUnlockHidden_Idempotent(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedHiddenQuest(t, db, "hidden-war", models.TriggerGymWarWin)

	first, err := svc.UnlockHidden("lifter", models.TriggerGymWarWin)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	again, err := svc.UnlockHidden("lifter", models.TriggerGymWarWin)
	assert.NoError(t, err)
	assert.Len(t, again, 0, "re-firing a trigger must not re-reveal")
}

func TestProgressFor(t *testing.T) {
	svc, db, _ := newQuestFixture(t)
	seedPublicQuests(t, db, 2)

	svc.Increment("lifter", "quest-00", 1)
	svc.Increment("lifter", "quest-01", 2)

	rows, err := svc.ProgressFor("lifter")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.NotEmpty(t, r.Quest.Title)
	}
}
