// Package middleware provides Gin middleware shared across the API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics anywhere in the handler pipeline into a generic
// 500 response carrying the failure message and a timestamp. Business-rule
// failures never reach this point; only unexpected failures (store down,
// programming errors) do.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("unhandled failure", "error", recovered, "path", c.Request.URL.Path, "method", c.Request.Method)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message":   fmt.Sprint(recovered),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
