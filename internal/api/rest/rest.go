package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-forge/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Irreversible lifecycle transitions (requires authentication)
		v1.POST("/nft/reveal", middleware.Auth(authCfg), handler.Reveal)
		v1.POST("/nft/customize", middleware.Auth(authCfg), handler.Customize)

		// Pre-flight checks (public read access)
		v1.POST("/nft/token-id/check", handler.CheckTokenID)
		v1.GET("/nft/recipes/availability", handler.RecipeAvailability)
	}
}
