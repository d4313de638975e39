package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"miohost/utils"
)

// deskTokenPrefix keys active desk sessions in the auth cache; tokens
// outside the cache are treated as revoked even when the JWT is valid.
const deskTokenPrefix = "desk:token:"

// DeskSessionTTL bounds a desk console login.
const DeskSessionTTL = 12 * time.Hour

// CacheDeskToken marks a freshly issued desk token as active.
func CacheDeskToken(c *gin.Context, token string) error {
	key := deskTokenPrefix + utils.HashToken(token)
	return utils.GetAuthCacheClient().Set(c.Request.Context(), key, "1", DeskSessionTTL).Err()
}

// DeskAuthMiddleware guards the front-desk console routes.
func DeskAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		key := deskTokenPrefix + utils.HashToken(tokenString)
		ok, err := utils.GetAuthCacheClient().Exists(c.Request.Context(), key).Result()
		if err != nil || ok == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked, log in again"})
			return
		}

		c.Set("staffID", staffID)
		c.Next()
	}
}
