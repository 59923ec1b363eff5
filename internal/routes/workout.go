package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

func RegisterWorkoutRoutes(r gin.IRouter) {
	workouts := r.Group("/workouts")
	workouts.Use(middleware.AuthMiddleware(), middleware.UserRateLimit(60, time.Minute))
	{
		workouts.POST("", handlers.LogWorkout)
	}
}
