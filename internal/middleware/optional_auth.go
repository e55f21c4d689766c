package middleware

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware sets user_id when a valid token is present and
// passes anonymous requests through untouched. Used on public pages that
// annotate their context with follow state for signed-in viewers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFromRequest(c); tokenStr != "" {
			if userID, err := userIDFromToken(tokenStr); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}
