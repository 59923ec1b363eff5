package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
)

// GetWeeklyQuests handles GET /quests/weekly: this week's deterministic
// rotation of five public quests.
func GetWeeklyQuests(c *gin.Context) {
	quests, err := questService.WeeklyQuests()
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quests": quests})
}

// GetQuests handles GET /quests: the catalog as the caller sees it, hidden
// quests masked until unlocked.
func GetQuests(c *gin.Context) {
	userId, _ := c.Get("userId")

	views, err := questService.VisibleQuests(userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quests": views})
}

// GetQuestProgress handles GET /quests/progress
func GetQuestProgress(c *gin.Context) {
	userId, _ := c.Get("userId")

	rows, err := questService.ProgressFor(userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": rows})
}

type IncrementQuestInput struct {
	Delta int `json:"delta" binding:"required"`
}

// IncrementQuest handles POST /quests/:id/progress: an activity event from
// the outside advancing one quest counter.
func IncrementQuest(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input IncrementQuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, completed, err := questService.Increment(userId.(string), c.Param("id"), input.Delta)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": row, "completed": completed})
}

type AchievementInput struct {
	Trigger string `json:"trigger" binding:"required"`
}

// ReportAchievement handles POST /quests/achievements: external achievement
// events (gym wars and the like) that reveal hidden quests.
func ReportAchievement(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	revealed, err := questService.UnlockHidden(userId.(string), input.Trigger)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revealed": len(revealed)})
}
