package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	apperrors "github.com/Blazehunterx/ironmatch-sub000/pkg/errors"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

// CosmeticService gates reward items behind XP and rank. Unlock policy:
// XP is SPENT — the cost is deducted from the balance atomically with the
// unlock, it is not a mere threshold check. Unlocks are one-way.
type CosmeticService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCosmeticService(db *gorm.DB) *CosmeticService {
	return &CosmeticService{db: db, now: time.Now}
}

// CanUnlock returns nil when the user meets both gates, otherwise an
// InsufficientResource error naming the failed gate. XP is checked first.
func (s *CosmeticService) CanUnlock(user *models.User, item *models.CosmeticItem) error {
	if user.XP < item.XPCost {
		return apperrors.InsufficientResource(fmt.Sprintf("requires %d XP, you have %d", item.XPCost, user.XP))
	}

	if item.MinRank != "" {
		required := gamification.RankIndex(item.MinRank)
		current := gamification.RankIndex(gamification.CurrentRank(user.LiftProfile()).Name)
		if required >= 0 && current < required {
			return apperrors.InsufficientResource(fmt.Sprintf("requires rank %s or higher", item.MinRank))
		}
	}

	return nil
}

// Unlock spends the XP cost and adds the item to the user's unlocked set.
func (s *CosmeticService) Unlock(userID, itemID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	var item models.CosmeticItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, apperrors.NotFound("Cosmetic item not found")
	}

	var existing models.UserCosmetic
	if err := s.db.First(&existing, "user_id = ? AND item_id = ?", userID, itemID).Error; err == nil {
		return nil, apperrors.BadRequest("Item already unlocked")
	}

	if err := s.CanUnlock(&user, &item); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user.XP -= item.XPCost
		if err := tx.Model(&user).Update("xp", user.XP).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.UserCosmetic{
			UserID:     userID,
			ItemID:     itemID,
			UnlockedAt: s.now(),
		}).Error; err != nil {
			return err
		}

		activity := models.UserActivity{
			ID:        utils.GenerateID(),
			Type:      models.ActivityCosmeticUnlock,
			ActorID:   userID,
			TargetID:  itemID,
			Message:   fmt.Sprintf("Unlocked %q", item.Name),
			CreatedAt: s.now(),
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("user_id", userID).Str("item_id", itemID).Int("cost", item.XPCost).Msg("cosmetic unlocked")
	return &user, nil
}

// Equip sets the user's active selection for the item's category. The item
// must already be in the unlocked set; one active item per category.
func (s *CosmeticService) Equip(userID, itemID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.NotFound("User not found")
	}

	var item models.CosmeticItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, apperrors.NotFound("Cosmetic item not found")
	}

	var unlocked models.UserCosmetic
	if err := s.db.First(&unlocked, "user_id = ? AND item_id = ?", userID, itemID).Error; err != nil {
		return nil, apperrors.Forbidden("Item is not unlocked")
	}

	var column string
	switch item.Category {
	case models.CosmeticCategoryFrame:
		column = "equipped_frame_id"
		user.EquippedFrameID = &item.ID
	case models.CosmeticCategoryColor:
		column = "equipped_color_id"
		user.EquippedColorID = &item.ID
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown cosmetic category %q", item.Category))
	}

	if err := s.db.Model(&user).Update(column, item.ID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UnlockedItems lists the user's unlocked set with items preloaded.
func (s *CosmeticService) UnlockedItems(userID string) ([]models.UserCosmetic, error) {
	var rows []models.UserCosmetic
	err := s.db.Preload("Item").Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// Catalog returns the full cosmetic catalog.
func (s *CosmeticService) Catalog() ([]models.CosmeticItem, error) {
	var items []models.CosmeticItem
	err := s.db.Order("xp_cost asc").Find(&items).Error
	return items, err
}
