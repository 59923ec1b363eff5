package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

const (
	workoutXP     = 10
	eliteTotalLbs = 1800 // big-4 total that reveals the elite hidden quests
)

// big4 maps recognized exercise names to the lift profile field they update
// on a new PR.
var big4 = map[string]string{
	"bench press":    "bench_max",
	"squat":          "squat_max",
	"deadlift":       "deadlift_max",
	"overhead press": "overhead_press_max",
}

// WorkoutService is the intake point for workout/activity events from the
// outside. Each logged workout grants base XP, advances matching weekly
// quests, and may register a new PR on a big-4 lift (which re-derives the
// rank and can reveal hidden quests).
type WorkoutService struct {
	db     *gorm.DB
	lb     *LeaderboardService
	quests *QuestService

	now func() time.Time
}

func NewWorkoutService(db *gorm.DB, lb *LeaderboardService, quests *QuestService) *WorkoutService {
	return &WorkoutService{db: db, lb: lb, quests: quests, now: time.Now}
}

type LogWorkoutInput struct {
	Exercise    string               `json:"exercise" binding:"required"`
	Category    models.QuestCategory `json:"category" binding:"required"`
	Sets        int                  `json:"sets"`
	Reps        int                  `json:"reps"`
	WeightLbs   float64              `json:"weightLbs"`
	PerformedAt *time.Time           `json:"performedAt"`
}

// LogResult reports what a single workout event changed.
type LogResult struct {
	Workout         models.WorkoutLog `json:"workout"`
	NewPR           bool              `json:"newPr"`
	RankChanged     bool              `json:"rankChanged"`
	Rank            gamification.Rank `json:"rank"`
	CompletedQuests []string          `json:"completedQuests"`
}

// Log records a workout event and fans it out into the gamification layer.
func (s *WorkoutService) Log(userID string, input LogWorkoutInput) (*LogResult, error) {
	if input.Sets < 0 || input.Reps < 0 || input.WeightLbs < 0 {
		return nil, apperrors.InvalidInput("sets, reps and weight cannot be negative")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	now := s.now()
	performedAt := now
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	workout := models.WorkoutLog{
		ID:          utils.GenerateID(),
		UserID:      userID,
		Exercise:    input.Exercise,
		Category:    input.Category,
		Sets:        input.Sets,
		Reps:        input.Reps,
		WeightLbs:   input.WeightLbs,
		PerformedAt: performedAt,
		CreatedAt:   now,
	}

	oldRank := gamification.CurrentRank(user.LiftProfile())
	result := &LogResult{Workout: workout}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"workouts_logged": gorm.Expr("workouts_logged + 1"),
		}

		// PR detection on the big 4. Maxima only ever go up.
		if column, ok := big4[strings.ToLower(input.Exercise)]; ok && input.WeightLbs > 0 {
			current := map[string]float64{
				"bench_max":          user.BenchMax,
				"squat_max":          user.SquatMax,
				"deadlift_max":       user.DeadliftMax,
				"overhead_press_max": user.OverheadPressMax,
			}[column]

			if input.WeightLbs > current {
				updates[column] = input.WeightLbs
				result.NewPR = true
			}
		}

		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}

		return grantXP(tx, s.lb, userID, workoutXP)
	})
	if err != nil {
		return nil, err
	}

	// Re-derive rank from the updated profile
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	newRank := gamification.CurrentRank(user.LiftProfile())
	result.Rank = newRank

	if newRank.Name != oldRank.Name {
		result.RankChanged = true
		activity := models.UserActivity{
			ID:        utils.GenerateID(),
			Type:      models.ActivityRankChanged,
			ActorID:   userID,
			Message:   fmt.Sprintf("%s reached rank %s", user.Username, newRank.Name),
			CreatedAt: now,
		}
		if err := s.db.Create(&activity).Error; err != nil {
			logger.Warn().Err(err).Msg("failed to record rank change")
		}
	}

	if user.LiftProfile().Total() >= eliteTotalLbs {
		if _, err := s.quests.UnlockHidden(userID, models.TriggerEliteTotal); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("hidden quest unlock failed")
		}
	}

	result.CompletedQuests = s.advanceQuests(userID, input.Category)
	return result, nil
}

// advanceQuests bumps this week's rotation: +1 on quests matching the
// workout's category and +1 on consistency quests for any workout at all.
func (s *WorkoutService) advanceQuests(userID string, category models.QuestCategory) []string {
	weekly, err := s.quests.WeeklyQuests()
	if err != nil {
		logger.Warn().Err(err).Msg("weekly quest lookup failed")
		return nil
	}

	var completed []string
	for _, q := range weekly {
		if q.Category != category && q.Category != models.QuestCategoryConsistency {
			continue
		}

		_, done, err := s.quests.Increment(userID, q.ID, 1)
		if err != nil {
			logger.Warn().Err(err).Str("quest_id", q.ID).Msg("quest increment failed")
			continue
		}
		if done {
			completed = append(completed, q.ID)
		}
	}
	return completed
}
