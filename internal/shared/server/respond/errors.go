package respond

import (
	"github.com/gin-gonic/gin"

	"resume-checker/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failure: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error body and aborts the request.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
