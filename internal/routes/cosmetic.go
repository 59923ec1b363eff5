package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterCosmeticRoutes(r gin.IRouter) {
	cosmetics := r.Group("/cosmetics")
	cosmetics.Use(middleware.AuthMiddleware())
	{
		cosmetics.GET("", handlers.GetCosmeticCatalog)
		cosmetics.GET("/unlocked", handlers.GetMyCosmetics)
		cosmetics.POST("/:id/unlock", handlers.UnlockCosmetic)
		cosmetics.POST("/:id/equip", handlers.EquipCosmetic)
	}
}
