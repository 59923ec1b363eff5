package models

import "time"

type CosmeticCategory string

const (
	CosmeticCategoryFrame CosmeticCategory = "FRAME"
	CosmeticCategoryColor CosmeticCategory = "COLOR"
)

// CosmeticItem is an immutable catalog entry: a non-functional profile
// decoration gated behind XP and optionally a minimum rank.
type CosmeticItem struct {
	ID       string           `gorm:"primaryKey;type:text" json:"id"`
	Name     string           `json:"name"`
	Category CosmeticCategory `gorm:"type:text" json:"category"`
	XPCost   int              `json:"xpCost"`

	// Minimum rank name (catalog order via gamification.RankIndex); empty
	// means no rank gate.
	MinRank string `json:"minRank"`

	Preview string `json:"preview"`
}

// UserCosmetic marks an item as unlocked for a user. Unlocks are one-way:
// the engine never removes rows.
type UserCosmetic struct {
	UserID     string    `gorm:"primaryKey;type:text" json:"userId"`
	ItemID     string    `gorm:"primaryKey;type:text" json:"itemId"`
	UnlockedAt time.Time `json:"unlockedAt"`

	Item CosmeticItem `gorm:"foreignKey:ItemID" json:"item"`
}
