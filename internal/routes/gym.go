package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterGymRoutes(r gin.IRouter) {
	gyms := r.Group("/gyms")
	{
		gyms.GET("", handlers.ListGyms)
		gyms.POST("", middleware.AuthMiddleware(), handlers.CreateGym)
		gyms.POST("/:id/join", middleware.AuthMiddleware(), handlers.JoinGym)
	}

	// Public leaderboards
	r.GET("/leaderboard/lifters", handlers.GetGlobalLeaderboard)
	r.GET("/leaderboard/gyms", handlers.GetGymLeaderboard)
}
