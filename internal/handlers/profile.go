package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

// RankInfo is the derived rank block attached to profile reads. Ranks are
// recomputed from the lift profile on every read, never stored.
type RankInfo struct {
	Rank            gamification.Rank  `json:"rank"`
	NextRank        *gamification.Rank `json:"nextRank"`
	ProgressPercent float64            `json:"progressPercent"`
	Total           float64            `json:"total"`
}

func rankInfoFor(user *models.User) RankInfo {
	profile := user.LiftProfile()
	info := RankInfo{
		Rank:            gamification.CurrentRank(profile),
		ProgressPercent: gamification.ProgressPercent(profile),
		Total:           profile.Total(),
	}
	if next, ok := gamification.NextRank(profile); ok {
		info.NextRank = &next
	}
	return info
}

// relativeStrengths maps each big-4 lift to its bodyweight-relative score,
// or nil when the user has no bodyweight on file.
func relativeStrengths(user *models.User) map[string]float64 {
	if !user.HasBodyweight() {
		return nil
	}
	bw := *user.BodyweightKg
	return map[string]float64{
		"bench":         gamification.RelativeStrength(user.BenchMax, bw),
		"squat":         gamification.RelativeStrength(user.SquatMax, bw),
		"deadlift":      gamification.RelativeStrength(user.DeadliftMax, bw),
		"overheadPress": gamification.RelativeStrength(user.OverheadPressMax, bw),
	}
}

// GetProfile handles GET /users/profile and GET /users/:username
func GetProfile(c *gin.Context) {
	var user models.User
	var err error

	if username := c.Param("username"); username != "" {
		err = database.DB.Preload("Gym").First(&user, "username = ?", username).Error
	} else {
		userId, _ := c.Get("userId")
		err = database.DB.Preload("Gym").First(&user, "id = ?", userId).Error
	}

	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Email stays private to the account owner
	if viewerID, ok := c.Get("userId"); !ok || viewerID != user.ID {
		user.Email = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"user":              user,
		"rankInfo":          rankInfoFor(&user),
		"relativeStrengths": relativeStrengths(&user),
	})
}

type UpdateProfileInput struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`

	BodyweightKg *float64 `json:"bodyweightKg"`
	HeightCm     *float64 `json:"heightCm"`

	BenchMax         *float64 `json:"benchMax"`
	SquatMax         *float64 `json:"squatMax"`
	DeadliftMax      *float64 `json:"deadliftMax"`
	OverheadPressMax *float64 `json:"overheadPressMax"`
}

// UpdateProfile handles PUT /users/profile. Lift maxima and body metrics
// are only ever changed here or by a verified PR; negative values are
// rejected at the boundary.
func UpdateProfile(c *gin.Context) {
	userId, _ := c.Get("userId")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, v := range []*float64{input.BodyweightKg, input.HeightCm, input.BenchMax, input.SquatMax, input.DeadliftMax, input.OverheadPressMax} {
		if v != nil && *v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lift and body values cannot be negative"})
			return
		}
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.BodyweightKg != nil {
		updates["bodyweight_kg"] = *input.BodyweightKg
	}
	if input.HeightCm != nil {
		updates["height_cm"] = *input.HeightCm
	}
	if input.BenchMax != nil {
		updates["bench_max"] = *input.BenchMax
	}
	if input.SquatMax != nil {
		updates["squat_max"] = *input.SquatMax
	}
	if input.DeadliftMax != nil {
		updates["deadlift_max"] = *input.DeadliftMax
	}
	if input.OverheadPressMax != nil {
		updates["overhead_press_max"] = *input.OverheadPressMax
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	database.DB.First(&user, "id = ?", userId)
	c.JSON(http.StatusOK, gin.H{
		"user":              user,
		"rankInfo":          rankInfoFor(&user),
		"relativeStrengths": relativeStrengths(&user),
	})
}

// GetRank handles GET /users/profile/rank: just the derived rank block.
func GetRank(c *gin.Context) {
	userId, _ := c.Get("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, rankInfoFor(&user))
}

// GetRankCatalog handles GET /ranks: the full fixed catalog for UI display.
func GetRankCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ranks": gamification.Ranks})
}

// GetActivityFeed handles GET /users/profile/activity
func GetActivityFeed(c *gin.Context) {
	userId, _ := c.Get("userId")

	var activities []models.UserActivity
	if err := database.DB.Where("actor_id = ?", userId).
		Order("created_at desc").Limit(50).Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
