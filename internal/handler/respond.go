package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"farmlink/internal/apperr"
	"farmlink/internal/audit"
)

// clientInfo captures the caller's address and user agent for the audit
// trail.
func clientInfo(c *gin.Context) audit.ClientInfo {
	return audit.ClientInfo{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

// respondError translates service errors into HTTP responses. Tagged errors
// keep their status code and message; anything else becomes an opaque 500 so
// internals never leak to clients.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperr.From(err); ok {
		body := gin.H{"message": appErr.Message}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.Code, body)
		return
	}

	slog.Error("unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// respondBindError reports request body decoding or binding tag failures.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "details": err.Error()})
}
