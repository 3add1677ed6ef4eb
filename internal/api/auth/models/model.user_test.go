package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both", "Alice", "Nguyễn", "Alice Nguyễn"},
		{"first only", "Alice", "", "Alice"},
		{"last only", "", "Nguyễn", "Nguyễn"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, u.FullName())
		})
	}
}

func TestUserJSONNeverExposesSecrets(t *testing.T) {
	u := User{
		Username:      "alice",
		Email:         "alice@example.com",
		Password:      "$2a$10$hash",
		LoginAttempts: 3,
		IsLocked:      true,
		LockedUntil:   123456,
		LastLoginIP:   "10.0.0.1",
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "loginAttempts")
	assert.NotContains(t, out, "isLocked")
	assert.NotContains(t, out, "lockedUntil")
	assert.NotContains(t, out, "lastLoginIp")
	assert.Equal(t, "alice", out["username"])
}
