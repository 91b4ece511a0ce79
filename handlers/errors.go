package handlers

import (
	"errors"
	"net/http"

	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response. Server-side failures are logged and
// answered with a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
