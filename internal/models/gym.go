package models

import "time"

type Gym struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name string `gorm:"uniqueIndex" json:"name"`
	City string `json:"city"`

	MemberCount int64 `gorm:"-" json:"memberCount"`
}
