package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	"github.com/Blazehunterx/ironmatch-sub000/internal/services"
)

// CreateDuel handles POST /duels. The response carries the fairness
// advisory when both sides have bodyweight on file; an unfair matchup is
// surfaced, never blocked.
func CreateDuel(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input services.CreateDuelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duel, err := duelService.Create(userId.(string), input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	response := gin.H{"duel": duel}

	var challenger, opponent models.User
	if database.DB.First(&challenger, "id = ?", duel.ChallengerID).Error == nil &&
		database.DB.First(&opponent, "id = ?", duel.OpponentID).Error == nil {
		if lift, ok := liftFor(&challenger, duel.Exercise); ok && challenger.HasBodyweight() && opponent.HasBodyweight() {
			theirLift, _ := liftFor(&opponent, duel.Exercise)
			label, spread := gamification.CheckFairness(lift, *challenger.BodyweightKg, theirLift, *opponent.BodyweightKg)
			response["fairness"] = gin.H{"classification": label, "spread": spread}
		}
	}

	c.JSON(http.StatusCreated, response)
}

// ListDuels handles GET /duels
func ListDuels(c *gin.Context) {
	userId, _ := c.Get("userId")

	duels, err := duelService.ListForUser(userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"duels": duels})
}

// GetDuel handles GET /duels/:id
func GetDuel(c *gin.Context) {
	duel, err := duelService.Get(c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"duel": duel})
}

// AcceptDuel handles POST /duels/:id/accept
func AcceptDuel(c *gin.Context) {
	userId, _ := c.Get("userId")

	duel, err := duelService.Accept(c.Param("id"), userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"duel": duel})
}

// DeclineDuel handles POST /duels/:id/decline
func DeclineDuel(c *gin.Context) {
	userId, _ := c.Get("userId")

	duel, err := duelService.Decline(c.Param("id"), userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"duel": duel})
}

type SubmitProgressInput struct {
	Value    *float64 `json:"value" binding:"required"`
	MediaURL string   `json:"mediaUrl"`
}

// SubmitDuelProgress handles POST /duels/:id/progress
func SubmitDuelProgress(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input SubmitProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Proof requires a numeric value"})
		return
	}

	duel, err := duelService.SubmitProgress(c.Param("id"), userId.(string), *input.Value, input.MediaURL)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"duel": duel})
}

// ResolveDuel handles POST /duels/:id/resolve (manual completion)
func ResolveDuel(c *gin.Context) {
	userId, _ := c.Get("userId")

	duel, err := duelService.Resolve(c.Param("id"), userId.(string))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	result := gin.H{"duel": duel, "draw": duel.Draw}
	if duel.WinnerID != nil {
		result["winnerId"] = *duel.WinnerID
	}
	c.JSON(http.StatusOK, result)
}
