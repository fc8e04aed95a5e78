package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKeyAuth gates the license admin endpoints behind the shared
// admin secret. The comparison is constant time; a mismatch never
// reveals which part of the key differed.
func AdminKeyAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			slog.Warn("Admin key not configured, rejecting request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "API administrativa não configurada",
			})
			return
		}

		providedKey := c.GetHeader(adminKeyHeader)
		if providedKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Chave de administrador ausente",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(providedKey), []byte(adminKey)) != 1 {
			slog.Warn("Invalid admin key attempt",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Chave de administrador inválida",
			})
			return
		}

		c.Next()
	}
}
