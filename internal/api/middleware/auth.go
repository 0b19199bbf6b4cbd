package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/boxstory/yk/internal/model"
	"github.com/boxstory/yk/pkg/jwt"
	"github.com/boxstory/yk/pkg/response"
)

// RevocationChecker reports revoked token ids. *redis.Client satisfies it.
type RevocationChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth validates "Authorization: Bearer <access token>" and stores the
// caller's user_id, role, jti and token_exp in the context.
// A nil checker skips the revocation lookup; so does a checker error.
func JWTAuth(jwtMgr *jwt.Manager, revoked RevocationChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, response.CodeUnauthorized, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, response.CodeUnauthorized, "wrong token type")
			c.Abort()
			return
		}

		if revoked != nil {
			hit, err := revoked.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("token blacklist lookup failed", zap.Error(err))
			} else if hit {
				response.Unauthorized(c, response.CodeUnauthorized, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("is_business", claims.Business)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// BusinessOnly rejects landlords whose account is not a business account.
// Other roles that passed RoleAuth (admin) are let through.
func BusinessOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == model.RoleLandlord && !c.GetBool("is_business") {
			response.Forbidden(c, response.CodeBusinessRequired, "business account required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleAuth allows the request through when the caller has one of the roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, response.CodeForbidden, "role not permitted")
		c.Abort()
	}
}
