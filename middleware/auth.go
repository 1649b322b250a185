package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/utils"
)

// AdminContextKey holds the authenticated admin email in the gin context.
const AdminContextKey = "admin"

// AdminAuthMiddleware accepts either a Bearer JWT or the admin session cookie.
// The identity must match the configured admin.
func AdminAuthMiddleware(jwtSecret, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogDebug("AdminAuthMiddleware called")

		email, ok := adminFromRequest(c, jwtSecret)
		if !ok {
			utils.Unauthorized(c, utils.ErrLoginRequired)
			c.Abort()
			return
		}

		if !strings.EqualFold(email, adminEmail) {
			utils.LogError("Unknown admin attempted access: %s", email)
			utils.Unauthorized(c, utils.ErrLoginRequired)
			c.Abort()
			return
		}

		c.Set(AdminContextKey, email)
		c.Next()
	}
}

func adminFromRequest(c *gin.Context, jwtSecret string) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			return "", false
		}

		email, err := utils.ValidateAdminToken(tokenString, jwtSecret)
		if err != nil {
			utils.LogError("Invalid admin token: %v", err)
			return "", false
		}
		return email, true
	}

	return utils.AdminFromSession(c)
}
