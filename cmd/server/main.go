package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Blazehunterx/ironmatch-sub000/internal/config"
	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/handlers"
	"github.com/Blazehunterx/ironmatch-sub000/internal/middleware"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	"github.com/Blazehunterx/ironmatch-sub000/internal/routes"
	"github.com/Blazehunterx/ironmatch-sub000/internal/seeds"
	"github.com/Blazehunterx/ironmatch-sub000/internal/services"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/logger"
)

func main() {
	// 0. Load config & initialize logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting IronMatch Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect database & Redis
	database.Connect()
	database.InitRedis()

	// 2. Migrations
	logger.Info().Msg("🔄 Running database migrations...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Gym{},
		&models.Duel{},
		&models.Quest{},
		&models.QuestProgress{},
		&models.HiddenQuestUnlock{},
		&models.CosmeticItem{},
		&models.UserCosmetic{},
		&models.UserActivity{},
		&models.WorkoutLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("✅ Database migrations complete")

	// 3. Seed immutable catalogs
	seeds.SeedQuests(database.DB)
	seeds.SeedCosmetics(database.DB)

	// 4. Wire the engine. Services own the engine state; created here once
	// and torn down with the process, never as hidden singletons.
	leaderboards := services.NewLeaderboardService(database.Redis)
	quests := services.NewQuestService(database.DB, database.Redis, leaderboards)
	duels := services.NewDuelService(database.DB, leaderboards, quests)
	cosmetics := services.NewCosmeticService(database.DB)
	workouts := services.NewWorkoutService(database.DB, leaderboards, quests)
	handlers.Init(duels, quests, cosmetics, workouts, leaderboards)

	// 5. Router
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterUserRoutes(api)
		routes.RegisterDuelRoutes(api)
		routes.RegisterQuestRoutes(api)
		routes.RegisterCosmeticRoutes(api)
		routes.RegisterWorkoutRoutes(api)
		routes.RegisterGymRoutes(api)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 6. Serve with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", config.AppConfig.Port).Msg("IronMatch API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
