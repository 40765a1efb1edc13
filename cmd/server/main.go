package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mylance/content-engine/adapters/event"
	httpAdapter "github.com/mylance/content-engine/adapters/http"
	"github.com/mylance/content-engine/adapters/llm"
	"github.com/mylance/content-engine/adapters/persistence"
	activityUC "github.com/mylance/content-engine/internal/application/usecase/activity"
	authUC "github.com/mylance/content-engine/internal/application/usecase/auth"
	generationUC "github.com/mylance/content-engine/internal/application/usecase/generation"
	profileUC "github.com/mylance/content-engine/internal/application/usecase/profile"
	settingsUC "github.com/mylance/content-engine/internal/application/usecase/settings"
	"github.com/mylance/content-engine/internal/config"
	"github.com/mylance/content-engine/pkg/auth"
	"github.com/mylance/content-engine/pkg/logger"
	"github.com/mylance/content-engine/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Content Engine API Server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "content-engine-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	llmService, err := llm.NewOpenAIAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init LLM adapter", err)
	}

	// Repositories and stores
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	settingsRepo := persistence.NewPostgresSettingsRepo(dbPool)
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	activityRepo := persistence.NewPostgresActivityRepo(dbPool)
	snapshotStore := persistence.NewRedisSnapshotStore(redisClient)
	progressStore := persistence.NewRedisProgressStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	createProfileUseCase := profileUC.NewCreateProfileUseCase(profileRepo, kafkaClient, appLogger)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo)
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, kafkaClient, appLogger)
	strategyUseCase := generationUC.NewGenerateStrategyUseCase(profileRepo, settingsRepo, llmService, kafkaClient, appLogger)
	pillarsUseCase := generationUC.NewGeneratePillarsUseCase(profileRepo, llmService, kafkaClient, appLogger)
	promptsUseCase := generationUC.NewGeneratePromptsUseCase(profileRepo, llmService, progressStore, kafkaClient, appLogger)
	brandUseCase := generationUC.NewAnalyzeBrandUseCase(profileRepo, llmService, kafkaClient, appLogger)
	reviseUseCase := generationUC.NewReviseStrategyUseCase(profileRepo, llmService, snapshotStore, kafkaClient, appLogger)
	undoUseCase := generationUC.NewUndoStrategyUseCase(profileRepo, snapshotStore, kafkaClient, appLogger)
	progressUseCase := generationUC.NewGetPromptProgressUseCase(progressStore)
	thoughtLeadershipUseCase := settingsUC.NewThoughtLeadershipUseCase(settingsRepo)
	listActivityUseCase := activityUC.NewListActivityUseCase(activityRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(
		createProfileUseCase,
		listProfilesUseCase,
		getProfileUseCase,
		updateProfileUseCase,
		appLogger,
	)
	generationHandler := httpAdapter.NewGenerationHandler(
		strategyUseCase,
		pillarsUseCase,
		promptsUseCase,
		brandUseCase,
		reviseUseCase,
		undoUseCase,
		progressUseCase,
		updateProfileUseCase,
		appLogger,
	)
	settingsHandler := httpAdapter.NewSettingsHandler(thoughtLeadershipUseCase)
	activityHandler := httpAdapter.NewActivityHandler(listActivityUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/auth/login", authHandler.Login)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			profiles := private.Group("/profiles")
			{
				profiles.POST("", profileHandler.CreateProfile)
				profiles.GET("", profileHandler.ListProfiles)
				profiles.GET("/:id", profileHandler.GetProfile)
				profiles.PUT("/:id", profileHandler.UpdateProfile)
				profiles.GET("/:id/prompts", profileHandler.GetPrompts)
				profiles.GET("/:id/activity", activityHandler.ListActivity)

				profiles.POST("/:id/generate-strategy", generationHandler.GenerateStrategy)
				profiles.POST("/:id/generate-pillars", generationHandler.GeneratePillars)
				profiles.POST("/:id/generate-prompts", generationHandler.GeneratePrompts)
				profiles.GET("/:id/prompts/progress", generationHandler.GetPromptProgress)
				profiles.POST("/:id/analyze-brand", generationHandler.AnalyzeBrand)
				profiles.POST("/:id/update-strategy", generationHandler.UpdateStrategy)
				profiles.POST("/:id/revise-strategy", generationHandler.ReviseStrategy)
				profiles.POST("/:id/undo-strategy", generationHandler.UndoStrategy)
			}

			private.POST("/save-thought-leadership", settingsHandler.SaveThoughtLeadership)
			private.GET("/get-thought-leadership", settingsHandler.GetThoughtLeadership)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
