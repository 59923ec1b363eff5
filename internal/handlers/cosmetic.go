package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

// GetCosmeticCatalog handles GET /cosmetics
func GetCosmeticCatalog(c *gin.Context) {
	items, err := cosmeticService.Catalog()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetMyCosmetics handles GET /cosmetics/unlocked
func GetMyCosmetics(c *gin.Context) {
	userId, _ := c.Get("userId")

	rows, err := cosmeticService.UnlockedItems(userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unlocked": rows})
}

// UnlockCosmetic handles POST /cosmetics/:id/unlock. The XP cost is spent.
func UnlockCosmetic(c *gin.Context) {
	userId, _ := c.Get("userId")

	user, err := cosmeticService.Unlock(userId.(string), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item unlocked", "xp": user.XP})
}

// EquipCosmetic handles POST /cosmetics/:id/equip
func EquipCosmetic(c *gin.Context) {
	userId, _ := c.Get("userId")

	user, err := cosmeticService.Equip(userId.(string), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equippedFrameId": user.EquippedFrameID,
		"equippedColorId": user.EquippedColorID,
	})
}
