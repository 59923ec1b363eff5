package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`

	Password string `json:"-"`

	// Body metrics. Bodyweight is kilograms; nil means the user hasn't
	// entered it yet, which disables fairness scoring for them.
	BodyweightKg *float64 `json:"bodyweightKg"`
	HeightCm     *float64 `json:"heightCm"`

	// Big-4 one-rep maxima in pounds. Only mutated by explicit profile
	// edits or a verified PR; never auto-decremented.
	BenchMax         float64 `gorm:"default:0" json:"benchMax"`
	SquatMax         float64 `gorm:"default:0" json:"squatMax"`
	DeadliftMax      float64 `gorm:"default:0" json:"deadliftMax"`
	OverheadPressMax float64 `gorm:"default:0" json:"overheadPressMax"`

	XP int `gorm:"default:0" json:"xp"`

	GymID *string `json:"gymId"`
	Gym   *Gym    `gorm:"foreignKey:GymID" json:"gym,omitempty"`

	// Active cosmetic selections, one per category
	EquippedFrameID *string `json:"equippedFrameId"`
	EquippedColorID *string `json:"equippedColorId"`

	// Duel/gym-war tallies feeding hidden quest unlocks
	DuelsWon       int `gorm:"default:0" json:"duelsWon"`
	GymWarsWon     int `gorm:"default:0" json:"gymWarsWon"`
	WorkoutsLogged int `gorm:"default:0" json:"workoutsLogged"`
}

// LiftProfile adapts the stored maxima to the rank engine's input type.
func (u *User) LiftProfile() gamification.LiftProfile {
	return gamification.LiftProfile{
		Bench:         u.BenchMax,
		Squat:         u.SquatMax,
		Deadlift:      u.DeadliftMax,
		OverheadPress: u.OverheadPressMax,
	}
}

// HasBodyweight reports whether relative-strength scoring is available.
func (u *User) HasBodyweight() bool {
	return u.BodyweightKg != nil && *u.BodyweightKg > 0
}
