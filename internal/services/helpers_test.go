package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// setupTestDB opens a fresh in-memory SQLite DB with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Gym{},
		&models.Duel{},
		&models.Quest{},
		&models.QuestProgress{},
		&models.HiddenQuestUnlock{},
		&models.CosmeticItem{},
		&models.UserCosmetic{},
		&models.UserActivity{},
		&models.WorkoutLog{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	bw := 90.7
	user := models.User{
		ID:           id,
		Username:     id,
		Email:        id + "@example.com",
		BodyweightKg: &bw,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// fixedClock pins a service clock to a settable instant.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
