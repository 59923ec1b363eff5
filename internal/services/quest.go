package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

var ctxRedis = context.Background()

// QuestService owns quest reads, the weekly rotation and per-user progress
// bookkeeping. XP for a completed quest is granted exactly once.
type QuestService struct {
	db  *gorm.DB
	rdb *redis.Client
	lb  *LeaderboardService

	// Injected clock so lifecycle tests can pin time
	now func() time.Time
}

func NewQuestService(db *gorm.DB, rdb *redis.Client, lb *LeaderboardService) *QuestService {
	return &QuestService{db: db, rdb: rdb, lb: lb, now: time.Now}
}

// WeeklyQuests returns this week's five active public quests in rotation
// order. The selection is a pure function of week index and catalog, so the
// Redis cache is an optimization only; a cache miss or outage recomputes.
func (s *QuestService) WeeklyQuests() ([]models.Quest, error) {
	week := gamification.WeekIndex(s.now())
	cacheKey := fmt.Sprintf("weekly_quests:%d", week)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctxRedis, cacheKey).Result(); err == nil {
			var ids []string
			if json.Unmarshal([]byte(raw), &ids) == nil {
				if quests, err := s.questsInOrder(ids); err == nil {
					return quests, nil
				}
			}
		}
	}

	var public []models.Quest
	if err := s.db.Where("hidden = ?", false).Find(&public).Error; err != nil {
		return nil, err
	}

	ids := make([]string, len(public))
	for i, q := range public {
		ids[i] = q.ID
	}

	picked := gamification.PickWeeklyQuests(ids, s.now())

	if s.rdb != nil {
		if raw, err := json.Marshal(picked); err == nil {
			s.rdb.Set(ctxRedis, cacheKey, raw, 7*24*time.Hour)
		}
	}

	return s.questsInOrder(picked)
}

func (s *QuestService) questsInOrder(ids []string) ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.db.Where("id IN ?", ids).Find(&quests).Error; err != nil {
		return nil, err
	}
	if len(quests) != len(ids) {
		return nil, fmt.Errorf("quest catalog changed: want %d quests, found %d", len(ids), len(quests))
	}

	byID := make(map[string]models.Quest, len(quests))
	for _, q := range quests {
		byID[q.ID] = q
	}

	ordered := make([]models.Quest, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	return ordered, nil
}

// QuestView is a quest as one user sees it: hidden quests show their
// placeholder until unlocked, then the reveal record replaces it.
type QuestView struct {
	models.Quest
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
	Complete bool `json:"complete"`
}

// VisibleQuests lists the full catalog for a user: all public quests plus
// hidden quests masked or revealed according to the user's unlocks.
func (s *QuestService) VisibleQuests(userID string) ([]QuestView, error) {
	var quests []models.Quest
	if err := s.db.Order("id asc").Find(&quests).Error; err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool)
	var unlocks []models.HiddenQuestUnlock
	if err := s.db.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		return nil, err
	}
	for _, u := range unlocks {
		unlocked[u.QuestID] = true
	}

	progress := make(map[string]models.QuestProgress)
	var rows []models.QuestProgress
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		progress[r.QuestID] = r
	}

	views := make([]QuestView, 0, len(quests))
	for _, q := range quests {
		v := QuestView{Quest: q, Unlocked: !q.Hidden || unlocked[q.ID]}

		if q.Hidden && v.Unlocked {
			// Reveal record replaces the placeholder in all future reads
			v.Title = q.RevealTitle
			v.Description = q.RevealDescription
			v.Icon = q.RevealIcon
		}

		if p, ok := progress[q.ID]; ok {
			v.Progress = p.Progress
			v.Complete = p.CompletedAt != nil
		}

		views = append(views, v)
	}
	return views, nil
}

// Increment applies a progress delta from an external activity event. When
// the counter first reaches the target the quest completes and grants its
// XP reward; re-evaluating a completed quest never re-grants.
func (s *QuestService) Increment(userID, questID string, delta int) (*models.QuestProgress, bool, error) {
	if delta <= 0 {
		return nil, false, apperrors.InvalidInput("progress delta must be positive")
	}

	var quest models.Quest
	if err := s.db.First(&quest, "id = ?", questID).Error; err != nil {
		return nil, false, apperrors.NotFound("Quest not found")
	}

	if quest.Hidden {
		var unlock models.HiddenQuestUnlock
		if err := s.db.First(&unlock, "user_id = ? AND quest_id = ?", userID, questID).Error; err != nil {
			return nil, false, apperrors.Forbidden("Quest is not unlocked")
		}
	}

	var row models.QuestProgress
	completedNow := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.QuestProgress{UserID: userID, QuestID: questID}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}

		row.Progress += delta

		if row.CompletedAt == nil && row.Progress >= quest.Target {
			now := s.now()
			row.CompletedAt = &now
			completedNow = true

			if err := grantXP(tx, s.lb, userID, quest.XPReward); err != nil {
				return err
			}

			title := quest.Title
			if quest.Hidden {
				title = quest.RevealTitle
			}
			activity := models.UserActivity{
				ID:        utils.GenerateID(),
				Type:      models.ActivityQuestCompleted,
				ActorID:   userID,
				TargetID:  quest.ID,
				Message:   fmt.Sprintf("Completed quest %q (+%d XP)", title, quest.XPReward),
				CreatedAt: now,
			}
			if err := tx.Create(&activity).Error; err != nil {
				return err
			}
		}

		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, false, err
	}

	if completedNow {
		logger.Info().Str("user_id", userID).Str("quest_id", questID).Int("xp", quest.XPReward).Msg("quest completed")
	}

	return &row, completedNow, nil
}

// ProgressFor returns the user's progress rows with quests preloaded.
func (s *QuestService) ProgressFor(userID string) ([]models.QuestProgress, error) {
	var rows []models.QuestProgress
	err := s.db.Preload("Quest").Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// UnlockHidden reveals every hidden quest bound to the given achievement
// trigger for the user. Idempotent: re-firing a trigger is a no-op.
func (s *QuestService) UnlockHidden(userID, trigger string) ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.db.Where("hidden = ? AND unlock_trigger = ?", true, trigger).Find(&quests).Error; err != nil {
		return nil, err
	}

	var revealed []models.Quest
	for _, q := range quests {
		unlock := models.HiddenQuestUnlock{UserID: userID, QuestID: q.ID, UnlockedAt: s.now()}
		result := s.db.Where(models.HiddenQuestUnlock{UserID: userID, QuestID: q.ID}).
			Attrs(models.HiddenQuestUnlock{UnlockedAt: s.now()}).
			FirstOrCreate(&unlock)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			revealed = append(revealed, q)
			logger.Info().Str("user_id", userID).Str("quest_id", q.ID).Str("trigger", trigger).Msg("hidden quest revealed")
		}
	}
	return revealed, nil
}
