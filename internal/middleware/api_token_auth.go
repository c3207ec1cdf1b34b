package middleware

import (
	"strings"

	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APITokenAuth is a middleware that authenticates satellite requests using
// opaque API tokens. The satellites send "Authorization: Basic <token>"; the
// token is resolved against the user store. When no token matches (or none
// is sent) the request falls through to JWT validation.
func APITokenAuth(userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "basic" {
			c.Next()
			return
		}

		user, err := userSvc.Authorize(c.Request.Context(), parts[1])
		if err != nil {
			c.Next() // unknown token, let JWT auth reject it
			return
		}

		// Token is valid, set user ID in context and skip JWT auth
		c.Set(string(userIDKey), user.UserID)
		c.Set("authMethod", "api_token")
		c.Next()
	}
}
