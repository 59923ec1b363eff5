package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// Zero is a legitimate lift value, so no binding tags here; validation is
// explicit in the handlers.
type strengthPair struct {
	LiftLbs      float64 `json:"liftLbs"`
	BodyweightKg float64 `json:"bodyweightKg"`
}

type FairnessInput struct {
	Challenger strengthPair `json:"challenger"`
	Opponent   strengthPair `json:"opponent"`
}

// CheckFairness handles POST /fairness with two explicit (lift, bodyweight)
// pairs. Advisory only: the result never blocks duel creation.
func CheckFairness(c *gin.Context) {
	var input FairnessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Challenger.LiftLbs < 0 || input.Opponent.LiftLbs < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lift values cannot be negative"})
		return
	}
	if input.Challenger.BodyweightKg <= 0 || input.Opponent.BodyweightKg <= 0 {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "bodyweight missing"})
		return
	}

	label, spread := gamification.CheckFairness(
		input.Challenger.LiftLbs, input.Challenger.BodyweightKg,
		input.Opponent.LiftLbs, input.Opponent.BodyweightKg,
	)

	c.JSON(http.StatusOK, gin.H{
		"available":       true,
		"classification":  label,
		"spread":          spread,
		"challengerScore": gamification.DuelScore(input.Challenger.LiftLbs, input.Challenger.BodyweightKg),
		"opponentScore":   gamification.DuelScore(input.Opponent.LiftLbs, input.Opponent.BodyweightKg),
	})
}

// liftFor picks the stored max for a named exercise.
func liftFor(user *models.User, exercise string) (float64, bool) {
	switch strings.ToLower(exercise) {
	case "bench", "bench press":
		return user.BenchMax, true
	case "squat":
		return user.SquatMax, true
	case "deadlift":
		return user.DeadliftMax, true
	case "ohp", "overhead press":
		return user.OverheadPressMax, true
	}
	return 0, false
}

// PreviewFairness handles GET /fairness/:opponentId?exercise=bench using
// both users' stored profiles. Unavailable (not an error) when either side
// has no bodyweight on file.
func PreviewFairness(c *gin.Context) {
	userId, _ := c.Get("userId")
	exercise := c.DefaultQuery("exercise", "bench")

	var me, opponent models.User
	if err := database.DB.First(&me, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := database.DB.First(&opponent, "id = ?", c.Param("opponentId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Opponent not found"})
		return
	}

	myLift, ok := liftFor(&me, exercise)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown exercise"})
		return
	}
	theirLift, _ := liftFor(&opponent, exercise)

	if !me.HasBodyweight() || !opponent.HasBodyweight() {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "bodyweight missing"})
		return
	}

	label, spread := gamification.CheckFairness(myLift, *me.BodyweightKg, theirLift, *opponent.BodyweightKg)

	c.JSON(http.StatusOK, gin.H{
		"available":      true,
		"classification": label,
		"spread":         spread,
		"yourScore":      gamification.DuelScore(myLift, *me.BodyweightKg),
		"opponentScore":  gamification.DuelScore(theirLift, *opponent.BodyweightKg),
	})
}

// GetStrengthScore handles POST /strength/score: relative strength and
// duel score for one (lift, bodyweight) pair.
func GetStrengthScore(c *gin.Context) {
	var input strengthPair
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.LiftLbs < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lift values cannot be negative"})
		return
	}
	if input.BodyweightKg <= 0 {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "bodyweight missing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":        true,
		"relativeStrength": gamification.RelativeStrength(input.LiftLbs, input.BodyweightKg),
		"duelScore":        gamification.DuelScore(input.LiftLbs, input.BodyweightKg),
	})
}
