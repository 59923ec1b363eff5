package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
	"github.com/Blazehunterx/ironmatch-sub000/internal/services"
)

// LogWorkout handles POST /workouts: the activity event intake that feeds
// quest progress, PR detection and XP.
func LogWorkout(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input services.LogWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := workoutService.Log(userId.(string), input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
