package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNotificationType(t *testing.T) {
	valid := []string{
		NotificationTypeSubmitted,
		NotificationTypePending,
		NotificationTypeApproved,
		NotificationTypeRejected,
	}
	for _, v := range valid {
		assert.True(t, IsValidNotificationType(v), v)
	}

	invalid := []string{"", "deleted", "APPROVED", "spam"}
	for _, v := range invalid {
		assert.False(t, IsValidNotificationType(v), v)
	}
}
