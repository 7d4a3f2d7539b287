package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/authz"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/requestcontext"
	"github.com/piresc/wellnest/internal/utils"
)

// GinAuth verifies the bearer token on gin routes and stores the identity under IdentityKey
func GinAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.GinAppError(c, apperror.Unauthenticated("authorization header is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			utils.GinAppError(c, apperror.Unauthenticated("invalid authorization format"))
			return
		}

		identity, err := verifier.VerifyToken(parts[1])
		if err != nil {
			utils.GinAppError(c, err)
			return
		}

		c.Set(IdentityKey, identity)
		c.Set("user_id", identity.Subject)
		c.Request = c.Request.WithContext(requestcontext.WithUserID(c.Request.Context(), identity.Subject))
		GinAddAttribute(c, "user.id", identity.Subject)
		c.Next()
	}
}

// GinIdentityFrom returns the identity stored by GinAuth, or nil
func GinIdentityFrom(c *gin.Context) *models.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}

// GinRequireRoles rejects callers whose role is not in roles
func GinRequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Authorize(GinIdentityFrom(c), roles...); err != nil {
			utils.GinAppError(c, err)
			return
		}
		c.Next()
	}
}
