package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SooLee99/safe-guide-backend/domain"
)

// IdentityKey is the gin context key holding the authenticated
// *domain.User for the current request.
const IdentityKey = "auth.identity"

// AuthMiddleware creates the authentication filter. It never rejects
// a request: any failure to establish an identity (missing header,
// bad token, unknown or soft-deleted user) leaves the request
// anonymous and lets the authorization policy decide later. The
// identity lives only in the request's own context.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Debug("ignoring non-bearer authorization header")
			c.Next()
			return
		}

		claims, err := tokenSvc.Verify(tokenParts[1])
		if err != nil {
			logger.Debug("token rejected", zap.Error(err))
			c.Next()
			return
		}

		user, err := userRepo.FindActiveByLoginID(c.Request.Context(), claims.Subject)
		if err != nil {
			logger.Debug("no active identity for token subject",
				zap.String("subject", claims.Subject),
				zap.Error(err))
			c.Next()
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

// IdentityFrom returns the authenticated user for the request, if the
// authentication filter established one.
func IdentityFrom(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
