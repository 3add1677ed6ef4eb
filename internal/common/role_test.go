package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"content_manager", RoleContentManager, true},
		{"content_producer", RoleContentProducer, true},
		{"", "", false},
		{"superuser", "", false},
		{"Admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		assert.True(t, RoleAdmin.IsValid())
		assert.True(t, RoleAdmin.CanApprove())
		assert.True(t, RoleAdmin.CanAdminister())
	})

	t.Run("content_manager", func(t *testing.T) {
		assert.True(t, RoleContentManager.IsValid())
		assert.True(t, RoleContentManager.CanApprove())
		assert.False(t, RoleContentManager.CanAdminister())
	})

	t.Run("content_producer", func(t *testing.T) {
		assert.True(t, RoleContentProducer.IsValid())
		assert.False(t, RoleContentProducer.CanApprove())
		assert.False(t, RoleContentProducer.CanAdminister())
	})

	t.Run("unknown role has no capability", func(t *testing.T) {
		r := Role("editor")
		assert.False(t, r.IsValid())
		assert.False(t, r.CanApprove())
		assert.False(t, r.CanAdminister())
	})
}
