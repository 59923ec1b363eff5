package models

import "time"

type QuestCategory string

const (
	QuestCategoryBodyPart    QuestCategory = "BODY_PART"
	QuestCategoryCardio      QuestCategory = "CARDIO"
	QuestCategorySocial      QuestCategory = "SOCIAL"
	QuestCategoryPR          QuestCategory = "PR"
	QuestCategoryConsistency QuestCategory = "CONSISTENCY"
	QuestCategoryVariety     QuestCategory = "VARIETY"
	QuestCategoryHidden      QuestCategory = "HIDDEN"
)

// Achievement triggers that reveal hidden quests. Fired by the engine
// (duel streaks, elite totals) or pushed in by external achievement events
// (gym wars).
const (
	TriggerGymWarWin    = "gym_war_win"
	TriggerDuelChampion = "duel_champion"
	TriggerEliteTotal   = "elite_total"
)

// Quest is an immutable catalog entry. Public quests are always
// discoverable; hidden quests carry a reveal record shown only after the
// user unlocks them, and a placeholder before that.
type Quest struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    QuestCategory `gorm:"type:text;index" json:"category"`
	Icon        string        `json:"icon"`
	Target      int           `json:"target"`
	XPReward    int           `json:"xpReward"`
	Hidden      bool          `gorm:"default:false;index" json:"hidden"`

	// Reveal record for hidden quests, masked until unlocked
	RevealTitle       string `json:"-"`
	RevealDescription string `json:"-"`
	RevealIcon        string `json:"-"`

	// Trigger tag for hidden quests, e.g. "gym_war_win", "duel_streak"
	UnlockTrigger string `gorm:"index" json:"-"`
}

// QuestProgress is the mutable per-user counter against a quest target.
// Completion is progress >= target; the counter itself is not clamped.
type QuestProgress struct {
	UserID      string     `gorm:"primaryKey;type:text" json:"userId"`
	QuestID     string     `gorm:"primaryKey;type:text" json:"questId"`
	Progress    int        `gorm:"default:0" json:"progress"`
	CompletedAt *time.Time `json:"completedAt"`

	Quest Quest `gorm:"foreignKey:QuestID" json:"quest"`
}

// HiddenQuestUnlock records that an achievement revealed a hidden quest for
// a user. One-way: rows are only ever inserted.
type HiddenQuestUnlock struct {
	UserID     string    `gorm:"primaryKey;type:text" json:"userId"`
	QuestID    string    `gorm:"primaryKey;type:text" json:"questId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
