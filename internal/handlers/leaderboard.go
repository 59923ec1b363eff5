package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/gamification"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
)

func boardLimit(c *gin.Context) int64 {
	n, err := strconv.ParseInt(c.DefaultQuery("limit", "25"), 10, 64)
	if err != nil || n < 1 || n > 100 {
		return 25
	}
	return n
}

// GetGlobalLeaderboard handles GET /leaderboard/lifters, enriched with
// usernames and derived ranks.
func GetGlobalLeaderboard(c *gin.Context) {
	entries, err := leaderboardService.TopLifters(boardLimit(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	var users []models.User
	database.DB.Where("id IN ?", ids).Find(&users)
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	type row struct {
		Rank     int    `json:"rank"`
		UserID   string `json:"userId"`
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
		XP       int    `json:"xp"`
		RankName string `json:"rankName"`
	}

	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		r := row{Rank: e.Rank, UserID: e.ID, XP: e.XP}
		if u, ok := byID[e.ID]; ok {
			r.Username = u.Username
			r.Avatar = u.Avatar
			r.RankName = gamification.CurrentRank(u.LiftProfile()).Name
		}
		rows = append(rows, r)
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}

// GetGymLeaderboard handles GET /leaderboard/gyms: gym-vs-gym aggregate XP.
func GetGymLeaderboard(c *gin.Context) {
	entries, err := leaderboardService.TopGyms(boardLimit(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	var gyms []models.Gym
	database.DB.Where("id IN ?", ids).Find(&gyms)
	byID := make(map[string]models.Gym, len(gyms))
	for _, g := range gyms {
		byID[g.ID] = g
	}

	type row struct {
		Rank int    `json:"rank"`
		ID   string `json:"gymId"`
		Name string `json:"name"`
		City string `json:"city"`
		XP   int    `json:"xp"`
	}

	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		r := row{Rank: e.Rank, ID: e.ID, XP: e.XP}
		if g, ok := byID[e.ID]; ok {
			r.Name = g.Name
			r.City = g.City
		}
		rows = append(rows, r)
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}
