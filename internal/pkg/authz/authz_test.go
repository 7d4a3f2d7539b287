package authz

import (
	"testing"

	"github.com/piresc/wellnest/internal/pkg/apperror"
	"github.com/piresc/wellnest/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		identity *models.Identity
		allowed  []models.Role
		wantKind apperror.Kind
		wantErr  bool
	}{
		{
			name:     "admin allowed",
			identity: &models.Identity{Subject: "u1", Role: models.RoleAdmin},
			allowed:  []models.Role{models.RoleAdmin},
		},
		{
			name:     "user forbidden from admin route",
			identity: &models.Identity{Subject: "u1", Role: models.RoleUser},
			allowed:  []models.Role{models.RoleAdmin},
			wantErr:  true,
			wantKind: apperror.KindForbidden,
		},
		{
			name:     "nil identity unauthenticated",
			identity: nil,
			allowed:  []models.Role{models.RoleAdmin},
			wantErr:  true,
			wantKind: apperror.KindUnauthenticated,
		},
		{
			name:     "user in multi-role list",
			identity: &models.Identity{Subject: "u1", Role: models.RoleUser},
			allowed:  []models.Role{models.RoleUser, models.RoleAdmin},
		},
		{
			name:     "empty allowed list",
			identity: &models.Identity{Subject: "u1", Role: models.RoleAdmin},
			wantErr:  true,
			wantKind: apperror.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.allowed...)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestIsOwnerOrAdmin(t *testing.T) {
	assert.True(t, IsOwnerOrAdmin(&models.Identity{Subject: "a", Role: models.RoleUser}, "a"))
	assert.False(t, IsOwnerOrAdmin(&models.Identity{Subject: "a", Role: models.RoleUser}, "b"))
	assert.True(t, IsOwnerOrAdmin(&models.Identity{Subject: "a", Role: models.RoleAdmin}, "b"))
	assert.False(t, IsOwnerOrAdmin(nil, "a"))
}
