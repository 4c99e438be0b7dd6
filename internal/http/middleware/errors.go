package middleware

import (
	"net/http"

	"travelgateway/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler turns the last error attached with c.Error into a JSON
// {error: ...} body. Handlers that already wrote a response are left alone.
// With hideDetails, messages of unexpected failures are replaced by a generic one.
func ErrorHandler(hideDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		msg := err.Error()
		if hideDetails && !domain.IsPublic(err) {
			msg = domain.MsgInternalServerError
		}
		c.JSON(status, gin.H{"error": msg})
	}
}

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Recovery converts a panic into a 500 JSON response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("module", "HTTP").
			Str("request_id", GetRequestID(c)).
			Interface("panic", recovered).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": domain.MsgInternalServerError})
	})
}
