package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tattoohub/internal/pkg/jwt"
	"tattoohub/internal/pkg/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// JWTAuth accepts "Authorization: Bearer <token>" or the legacy "x-auth-token" header.
func JWTAuth(v tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			abortUnauthorized(c, "No token, authorization denied")
			return
		}

		claims, err := v.ValidateToken(token)
		if err != nil || claims.User.ID == "" {
			abortUnauthorized(c, "Token is not valid")
			return
		}

		c.Set(UserIDKey, claims.User.ID)
		c.Next()
	}
}

// UserID returns the id set by JWTAuth, or "".
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", false
		}
		return strings.TrimSpace(token), true
	}
	if token := c.GetHeader("x-auth-token"); token != "" {
		return token, true
	}
	return "", false
}

func abortUnauthorized(c *gin.Context, msg string) {
	response.Write(c, response.Message(http.StatusUnauthorized, msg))
	c.Abort()
}
