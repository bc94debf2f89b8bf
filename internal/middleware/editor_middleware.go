package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
)

const editorTokenHeader = "X-Editor-Token"

// IsEditor reports whether the request carries the configured editor token.
// An empty configured token disables editing entirely.
func IsEditor(c *gin.Context, cfg *config.Config) bool {
	if cfg == nil || strings.TrimSpace(cfg.EditorToken) == "" {
		return false
	}

	token := c.GetHeader(editorTokenHeader)
	if token == "" {
		token = c.Query("editor_token")
	}
	if token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(cfg.EditorToken)) == 1
}

// RequireEditor guards the section-editing API.
func RequireEditor(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsEditor(c, cfg) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "editor token required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
