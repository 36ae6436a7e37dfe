package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/logger"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards admin endpoints (cache refresh, token registration) with
// a single admin API key. hashedKey is the bcrypt hash of the accepted key;
// an empty hash rejects every request so a missing config fails closed.
func APIKeyAuth(hashedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hashedKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "admin API key is not configured",
			})
			c.Abort()
			return
		}

		apiKey := c.GetHeader(apiKeyHeader)
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing API key",
			})
			c.Abort()
			return
		}

		if err := helpers.CompareAPIKeyHash(apiKey, hashedKey); err != nil {
			if logger.Log != nil {
				logger.Log.Warn("Invalid API key",
					zap.String("key_prefix", helpers.ExtractKeyPrefix(apiKey)),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
				)
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid API key",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
