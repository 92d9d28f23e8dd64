package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// internalErrorBody matches the catch-all error returned by handlers
const internalErrorBody = `{"error":"An internal server error occurred."}`

// Recovery converts panics into the generic internal error response.
// The panic value is logged, never returned.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		c.Data(http.StatusInternalServerError, "application/json", []byte(internalErrorBody))
		c.Abort()
	})
}
