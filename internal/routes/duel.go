package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterDuelRoutes(r gin.IRouter) {
	duels := r.Group("/duels")
	duels.Use(middleware.AuthMiddleware(), middleware.UserRateLimit(30, time.Minute))
	{
		duels.POST("", handlers.CreateDuel)
		duels.GET("", handlers.ListDuels)
		duels.GET("/:id", handlers.GetDuel)
		duels.POST("/:id/accept", handlers.AcceptDuel)
		duels.POST("/:id/decline", handlers.DeclineDuel)
		duels.POST("/:id/progress", handlers.SubmitDuelProgress)
		duels.POST("/:id/resolve", handlers.ResolveDuel)
	}
}
