package handlers

import "github.com/Blazehunterx/ironmatch-sub000/internal/services"

// Service instances are created once in main and shared by all handlers.
var (
	duelService        *services.DuelService
	questService       *services.QuestService
	cosmeticService    *services.CosmeticService
	workoutService     *services.WorkoutService
	leaderboardService *services.LeaderboardService
)

// Init wires the handler layer to the engine services.
func Init(
	duels *services.DuelService,
	quests *services.QuestService,
	cosmetics *services.CosmeticService,
	workouts *services.WorkoutService,
	leaderboards *services.LeaderboardService,
) {
	duelService = duels
	questService = quests
	cosmeticService = cosmetics
	workoutService = workouts
	leaderboardService = leaderboards
}
