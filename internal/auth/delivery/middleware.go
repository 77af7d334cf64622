package delivery

import (
	"strings"

	"legox-backend/internal/auth/usecase"
	"legox-backend/pkg/apperrors"
	"legox-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserKey  = "user"
	ContextEmailKey = "email"
)

// AuthMiddleware extracts the bearer code from the Authorization header,
// resolves it to a user and stores both in the context. Scheme matching is
// case-insensitive.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.AbortWithError(c, apperrors.NoToken("authorization header is expected"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.AbortWithError(c, apperrors.NoToken("authorization header must start with Bearer"))
			return
		}

		code := strings.TrimSpace(parts[1])
		if code == "" {
			// A bare scheme is a malformed header, not an unknown token
			httputil.AbortWithError(c, apperrors.NoToken("bearer code is empty"))
			return
		}

		user, err := authUsecase.ValidateToken(code)
		if err != nil {
			httputil.AbortWithError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextEmailKey, user.Email)
		c.Next()
	}
}
