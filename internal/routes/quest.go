package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterQuestRoutes(r gin.IRouter) {
	quests := r.Group("/quests")
	quests.Use(middleware.AuthMiddleware())
	{
		quests.GET("", handlers.GetQuests)
		quests.GET("/weekly", handlers.GetWeeklyQuests)
		quests.GET("/progress", handlers.GetQuestProgress)
		quests.POST("/:id/progress", handlers.IncrementQuest)
		quests.POST("/achievements", handlers.ReportAchievement)
	}
}
