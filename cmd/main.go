package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lumenlaw/intake-backend/internal/clients/rediscache"
	"github.com/lumenlaw/intake-backend/internal/db"
	"github.com/lumenlaw/intake-backend/internal/handlers"
	"github.com/lumenlaw/intake-backend/internal/intake/orchestrator"
	"github.com/lumenlaw/intake-backend/internal/intake/prompts"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
	"github.com/lumenlaw/intake-backend/internal/logger"
	"github.com/lumenlaw/intake-backend/internal/middleware"
	"github.com/lumenlaw/intake-backend/internal/repos"
	"github.com/lumenlaw/intake-backend/internal/server"
	"github.com/lumenlaw/intake-backend/internal/services"
	"github.com/lumenlaw/intake-backend/internal/utils"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Startup assertions: every mode must have a schema, a gate, and full
	// prompt coverage before the process takes traffic.
	for _, mode := range schema.ValidIntakeTypes() {
		cfg, err := orchestrator.ConfigFor(mode)
		if err != nil {
			log.Fatal("Mode config missing", "mode", mode, "error", err)
		}
		lib := prompts.GenerateFromSchema(cfg.Schema, cfg.Reveals)
		if err := prompts.AssertCoverage(cfg.Schema, lib); err != nil {
			log.Fatal("Prompt coverage check failed", "mode", mode, "error", err)
		}
	}

	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	pg := postgresService.DB()

	statusCache, err := rediscache.NewStatusCache(log)
	if err != nil {
		log.Warn("Redis status cache unavailable, continuing without it", "error", err)
		statusCache = nil
	}

	userRepo := repos.NewUserRepo(pg, log)
	userTokenRepo := repos.NewUserTokenRepo(pg, log)
	intakeRepo := repos.NewIntakeRepo(pg, log)

	authService := services.NewAuthService(
		pg, log, userRepo, userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	intakeService := services.NewIntakeService(log, intakeRepo, statusCache)
	promptService, err := services.NewChatPromptService(log, intakeService)
	if err != nil {
		log.Fatal("Prompt service init failed", "error", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	intakeHandler := handlers.NewIntakeHandler(intakeService, promptService)
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		IntakeHandler:  intakeHandler,
		AllowOrigins:   allowOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
