package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCanEdit(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleEditor, true},
		{RoleViewer, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.CanEdit(), "role %s", tt.role)
	}
}

func TestParseRoleDefaultsToViewer(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleEditor, ParseRole("EDITOR"))
	assert.Equal(t, RoleViewer, ParseRole("VIEWER"))
	assert.Equal(t, RoleViewer, ParseRole("admin"))
	assert.Equal(t, RoleViewer, ParseRole("superuser"))
	assert.Equal(t, RoleViewer, ParseRole(""))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleEditor.IsAdmin())
	assert.False(t, RoleViewer.IsAdmin())
}
