package models

import "time"

type ActivityType string

const (
	ActivityWorkoutLogged  ActivityType = "WORKOUT_LOGGED"
	ActivityQuestCompleted ActivityType = "QUEST_COMPLETED"
	ActivityDuelResolved   ActivityType = "DUEL_RESOLVED"
	ActivityRankChanged    ActivityType = "RANK_CHANGED"
	ActivityCosmeticUnlock ActivityType = "COSMETIC_UNLOCKED"
)

// UserActivity is the append-only feed row written whenever the engine
// grants XP, resolves a duel or detects a rank change.
type UserActivity struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	Type      ActivityType `gorm:"type:text;index" json:"type"`
	ActorID   string       `gorm:"index" json:"actorId"`
	TargetID  string       `json:"targetId"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

// WorkoutLog is a single workout event pushed in from the activity source.
// The quest engine fans it into progress increments; it is never read back
// by the core beyond PR detection.
type WorkoutLog struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	UserID      string        `gorm:"index" json:"userId"`
	Exercise    string        `json:"exercise"`
	Category    QuestCategory `gorm:"type:text" json:"category"`
	Sets        int           `json:"sets"`
	Reps        int           `json:"reps"`
	WeightLbs   float64       `json:"weightLbs"`
	PerformedAt time.Time     `json:"performedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
}
