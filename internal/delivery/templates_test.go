package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeEmail(t *testing.T) {
	msg := WelcomeEmail("alice@example.com", "Alice Nguyễn")

	assert.Equal(t, "alice@example.com", msg.To)
	assert.Contains(t, msg.HTML, "Alice Nguyễn")
}

func TestPasswordResetEmail(t *testing.T) {
	resetURL := "https://app.example.com/reset-password?token=abc123"
	msg := PasswordResetEmail("alice@example.com", "Alice", resetURL)

	assert.Contains(t, msg.HTML, resetURL)
	assert.Contains(t, msg.HTML, "1 giờ")
}

func TestSubmissionEmail(t *testing.T) {
	msg := SubmissionEmail("alice@example.com", "Alice", "Hành trình xanh")

	assert.Contains(t, msg.HTML, "Hành trình xanh")
	assert.Contains(t, msg.Subject, "gửi duyệt")
}

func TestApprovedEmail(t *testing.T) {
	msg := ApprovedEmail("alice@example.com", "Alice", "Hành trình xanh")

	assert.Contains(t, msg.HTML, "Hành trình xanh")
	assert.Contains(t, msg.HTML, "đã được duyệt")
}

func TestRejectedEmail(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		msg := RejectedEmail("alice@example.com", "Alice", "Hành trình xanh", "Thiếu nguồn trích dẫn")
		assert.Contains(t, msg.HTML, "Lý do: Thiếu nguồn trích dẫn")
	})

	t.Run("without reason", func(t *testing.T) {
		msg := RejectedEmail("alice@example.com", "Alice", "Hành trình xanh", "")
		assert.NotContains(t, msg.HTML, "Lý do")
		assert.Contains(t, msg.HTML, "gửi duyệt lại")
	})
}
