package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carelink/carelink-api/internal/handler"
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/pkg/auth"
)

const ContextAuthUser = "auth_user"

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate verifies the bearer token and sets the acting user in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid token"))
			c.Abort()
			return
		}

		c.Set(ContextAuthUser, &model.AuthUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  model.Role(claims.Role),
			Name:  claims.Name,
		})
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil on
// routes that skipped it.
func CurrentUser(c *gin.Context) *model.AuthUser {
	v, ok := c.Get(ContextAuthUser)
	if !ok {
		return nil
	}
	user, ok := v.(*model.AuthUser)
	if !ok {
		return nil
	}
	return user
}
