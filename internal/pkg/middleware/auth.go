package middleware

import (
	"errors"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/authz"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/piresc/wellnest/internal/pkg/requestcontext"
	"github.com/piresc/wellnest/internal/utils"
)

// IdentityKey is the echo context key holding the verified *models.Identity
const IdentityKey = "identity"

// TokenVerifier verifies a bearer token and returns the caller identity
type TokenVerifier interface {
	VerifyToken(tokenString string) (*models.Identity, error)
}

// JWTAuth extracts the bearer token (Authorization header, or ?token= for websocket
// clients) and stores the verified identity in the echo context.
func JWTAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  IdentityKey,
		TokenLookup: "header:Authorization:Bearer ,query:token",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return verifier.VerifyToken(auth)
		},
		SuccessHandler: func(c echo.Context) {
			if identity := IdentityFrom(c); identity != nil {
				c.Set("user_id", identity.Subject)
				req := c.Request()
				c.SetRequest(req.WithContext(requestcontext.WithUserID(req.Context(), identity.Subject)))
				AddAttribute(c, "user.id", identity.Subject)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var appErr *apperror.Error
			if errors.As(err, &appErr) {
				return utils.AppErrorResponse(c, appErr)
			}
			return utils.AppErrorResponse(c, apperror.Unauthenticated("missing or malformed token"))
		},
	})
}

// IdentityFrom returns the identity stored by JWTAuth, or nil
func IdentityFrom(c echo.Context) *models.Identity {
	identity, _ := c.Get(IdentityKey).(*models.Identity)
	return identity
}

// RequireRoles rejects callers whose role is not in roles
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authz.Authorize(IdentityFrom(c), roles...); err != nil {
				return utils.AppErrorResponse(c, err)
			}
			return next(c)
		}
	}
}

// CallerID returns the authenticated caller's user ID
func CallerID(c echo.Context) (uuid.UUID, error) {
	identity := IdentityFrom(c)
	if identity == nil {
		return uuid.Nil, apperror.Unauthenticated("authentication required")
	}
	id, err := identity.UserID()
	if err != nil {
		return uuid.Nil, apperror.Invalid("token subject is not a user id")
	}
	return id, nil
}
