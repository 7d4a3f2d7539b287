// Package authz holds the role gate applied after a session token has been verified.
package authz

import (
	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
)

// Authorize admits identity when its role is one of allowed.
// A nil identity is Unauthenticated; a role outside allowed is Forbidden.
func Authorize(identity *models.Identity, allowed ...models.Role) error {
	if identity == nil {
		return apperror.Unauthenticated("authentication required")
	}

	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}

	return apperror.Forbidden("insufficient role")
}

// IsOwnerOrAdmin reports whether identity may act on a resource owned by ownerID
func IsOwnerOrAdmin(identity *models.Identity, ownerID string) bool {
	if identity == nil {
		return false
	}
	return identity.Role == models.RoleAdmin || identity.Subject == ownerID
}
