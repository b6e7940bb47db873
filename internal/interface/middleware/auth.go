package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-portal/pkg/helpers"
	"github.com/oksasatya/go-auth-portal/pkg/response"
)

const CtxUserIDKey = "userID"

// BearerAuth extracts the bearer token from the Authorization header,
// verifies it and injects the authenticated user id into the Gin context.
// The three failure causes stay distinguishable in the message (missing,
// invalid, expired) but all map to 401.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, helpers.ErrTokenMissing.Error())
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			msg := helpers.ErrTokenInvalid.Error()
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = helpers.ErrTokenExpired.Error()
			}
			response.AbortError(c, http.StatusUnauthorized, msg)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
