package handlers

import (
	"net/http"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal detail
// stays out of the payload.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsCapacity(err):
		respondError(c, http.StatusConflict, "capacity_exhausted", err.Error())
	case domain.IsIDGeneration(err):
		respondError(c, http.StatusServiceUnavailable, "id_generation_exhausted", err.Error())
	case domain.IsConsistency(err):
		respondError(c, http.StatusInternalServerError, "consistency_error", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload")
		return false
	}
	return true
}
