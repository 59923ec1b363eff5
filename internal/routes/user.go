package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		// Protected (specific paths first)
		protected := users.Group("/profile")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("", handlers.GetProfile)
			protected.PUT("", handlers.UpdateProfile)
			protected.GET("/rank", handlers.GetRank)
			protected.GET("/activity", handlers.GetActivityFeed)
		}

		// Public (wildcard last); a valid token personalizes the view
		users.GET("/:username", middleware.OptionalAuthMiddleware(), handlers.GetProfile)
	}

	r.GET("/ranks", handlers.GetRankCatalog)

	strength := r.Group("")
	strength.Use(middleware.AuthMiddleware())
	{
		strength.POST("/strength/score", handlers.GetStrengthScore)
		strength.POST("/fairness", handlers.CheckFairness)
		strength.GET("/fairness/:opponentId", handlers.PreviewFairness)
	}
}
