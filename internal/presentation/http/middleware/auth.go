package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luzbrill/pos-terminal/internal/domain/entity"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/dto/response"
	"github.com/luzbrill/pos-terminal/pkg/capability"
	"github.com/luzbrill/pos-terminal/pkg/utils"
)

const sessionKey = "session"

// AuthMiddleware verifies the bearer token and builds the operator session.
// The capability set is evaluated once here; handlers only consult the typed
// predicate, never the raw grant strings.
func AuthMiddleware(verifier *utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sessionKey, &entity.Session{
			UserID:     claims.UserID,
			TerminalID: claims.TerminalID,
			Caps:       capability.FromStrings(claims.Grants),
		})

		c.Next()
	}
}

// SessionFromContext returns the session set by AuthMiddleware, or nil.
func SessionFromContext(c *gin.Context) *entity.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*entity.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireCapability rejects requests whose session lacks the capability.
func RequireCapability(cap capability.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil || !sess.Caps.Can(cap) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}
