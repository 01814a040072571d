package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// JWTMiddleware guards routes behind a valid admin session token.
type JWTMiddleware struct {
	tokens *utils.TokenIssuer
}

// NewJWTMiddleware constructs a JWTMiddleware.
func NewJWTMiddleware(tokens *utils.TokenIssuer) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

// Handle validates the Bearer token and injects the admin identity into
// the request context.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			utils.Error(c, 401, "Invalid or expired token")
			c.Abort()
			return
		}

		// The panel knows exactly one role; anything else is rejected here.
		if claims.Role != models.RoleAdmin {
			utils.Error(c, 401, "Invalid role")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
