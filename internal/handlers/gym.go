package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

type CreateGymInput struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city"`
}

// CreateGym handles POST /gyms
func CreateGym(c *gin.Context) {
	var input CreateGymInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gym := models.Gym{ID: utils.GenerateID(), Name: input.Name, City: input.City}
	if err := database.DB.Create(&gym).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A gym with that name already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gym": gym})
}

// ListGyms handles GET /gyms
func ListGyms(c *gin.Context) {
	var gyms []models.Gym
	if err := database.DB.Order("name asc").Find(&gyms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gyms"})
		return
	}

	for i := range gyms {
		database.DB.Model(&models.User{}).Where("gym_id = ?", gyms[i].ID).Count(&gyms[i].MemberCount)
	}

	c.JSON(http.StatusOK, gin.H{"gyms": gyms})
}

// JoinGym handles POST /gyms/:id/join: sets the user's home gym, which is
// where their earned XP aggregates for the gym-vs-gym board.
func JoinGym(c *gin.Context) {
	userId, _ := c.Get("userId")
	gymID := c.Param("id")

	var gym models.Gym
	if err := database.DB.First(&gym, "id = ?", gymID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userId).Update("gym_id", gymID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join gym"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"gym": gym})
}
