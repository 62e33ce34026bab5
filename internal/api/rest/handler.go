package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-forge/internal/api/shared/dto"
	"github.com/feral-file/ff-forge/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Reveal reveals a minted token by drawing a random recipe slot
	// POST /api/v1/nft/reveal
	Reveal(c *gin.Context)

	// Customize customizes a revealed token with skills and cosmetic traits
	// POST /api/v1/nft/customize
	Customize(c *gin.Context)

	// CheckTokenID reports whether a character token id is already taken
	// POST /api/v1/nft/token-id/check
	CheckTokenID(c *gin.Context)

	// RecipeAvailability reports the remaining slots per recipe pool
	// GET /api/v1/nft/recipes/availability
	RecipeAvailability(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// Reveal reveals a minted token by drawing a random recipe slot
func (h *handler) Reveal(c *gin.Context) {
	var req dto.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	response, err := h.executor.Reveal(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to reveal token")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Customize customizes a revealed token with skills and cosmetic traits
func (h *handler) Customize(c *gin.Context) {
	var req dto.CustomizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	response, err := h.executor.Customize(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to customize token")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckTokenID reports whether a character token id is already taken
func (h *handler) CheckTokenID(c *gin.Context) {
	var req dto.CheckTokenIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request")
		return
	}

	response, err := h.executor.CheckTokenID(c.Request.Context(), req.TokenID)
	if err != nil {
		respondError(c, err, "Failed to check token id")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RecipeAvailability reports the remaining slots per recipe pool
func (h *handler) RecipeAvailability(c *gin.Context) {
	response, err := h.executor.RecipeAvailability(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to count remaining recipes")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ff-forge-api",
	})
}
