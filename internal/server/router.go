package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lumenlaw/intake-backend/internal/handlers"
	"github.com/lumenlaw/intake-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	IntakeHandler  *handlers.IntakeHandler
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/logout", cfg.AuthHandler.Logout)

		protected.POST("/intakes", cfg.IntakeHandler.Create)
		protected.GET("/intakes/:id/status", cfg.IntakeHandler.GetStatus)
		protected.PATCH("/intakes/:id/fields", cfg.IntakeHandler.PatchFields)
		protected.GET("/intakes/:id/sidebar", cfg.IntakeHandler.SidebarSteps)
		protected.POST("/intakes/:id/submit", cfg.IntakeHandler.Submit)
		protected.GET("/intakes/:id/prompts", cfg.IntakeHandler.NextPrompts)
	}

	return router
}
