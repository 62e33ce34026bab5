package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-forge/internal/api/shared/errors"
	"github.com/feral-file/ff-forge/internal/logger"
)

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondError maps an executor error onto an HTTP status by its code
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest:
		c.JSON(http.StatusBadRequest, apiErr)
	case apierrors.ErrCodeValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, apiErr)
	case apierrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, apiErr)
	case apierrors.ErrCodeConflict:
		c.JSON(http.StatusConflict, apiErr)
	case apierrors.ErrCodeUnauthorized:
		c.JSON(http.StatusUnauthorized, apiErr)
	case apierrors.ErrCodeForbidden:
		c.JSON(http.StatusForbidden, apiErr)
	default:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, apiErr)
	}
}
