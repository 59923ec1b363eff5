package services

import (
	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// grantXP credits earned XP to the user row and mirrors it onto the
// leaderboards. Caller supplies the transaction so the credit commits or
// rolls back with whatever earned it.
func grantXP(tx *gorm.DB, lb *LeaderboardService, userID string, amount int) error {
	if amount <= 0 {
		return nil
	}

	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if err := tx.Model(&user).Update("xp", gorm.Expr("xp + ?", amount)).Error; err != nil {
		return err
	}

	lb.RecordXP(user.ID, user.GymID, amount)
	return nil
}
