package auth

import (
	"BookShelf/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAllowed(models.RoleAdmin, models.RoleAdmin))
	assert.True(t, RoleAllowed(models.RoleModerator, models.RoleAdmin, models.RoleModerator))
	assert.False(t, RoleAllowed(models.RoleUser, models.RoleAdmin))
	assert.False(t, RoleAllowed(models.RoleUser, models.RoleAdmin, models.RoleModerator))

	// Empty required set means any authenticated caller.
	assert.True(t, RoleAllowed(models.RoleUser))
}
