package utils

import (
	"errors"
	"net/http"

	"medical-tourism-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse sends a success response with 201 status
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// HandleError maps a service error to the HTTP response envelope.
// Conflict answers 400, matching the duplicate-booking and non-pending-cancel
// behavior of the public API.
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrAuthentication):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrAuthorization):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		// Unexpected failures are logged by the request logger, never surfaced
		_ = c.Error(err)
		ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
