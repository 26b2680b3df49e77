// file: middlewares/auth.go
package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vedantwankhade123/Roborace/utils"
)

// JWTAuthMiddleware guards the admin API. The token normally arrives in the
// Authorization header; EventSource cannot set headers, so the SSE route may
// pass it as a ?token= query parameter instead.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if !(len(parts) == 2 && parts[0] == "Bearer") {
				utils.Error(c, 4002, "Malformed Authorization header")
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			utils.Error(c, 4001, "Authorization required")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.Error(c, 4003, "Invalid token")
			c.Abort()
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_name", claims.Name)
		c.Set("admin_role", claims.Role)
		c.Next()
	}
}
