package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ecojourney/config"
	"ecojourney/internal/delivery/channels"
)

func TestMailerDisabledWithoutSMTP(t *testing.T) {
	mailer := channels.NewMailer(&config.Configuration{})

	assert.False(t, mailer.Enabled())
	assert.Error(t, mailer.SendEmail("alice@example.com", "subject", "<p>nội dung</p>"))
}

func TestSendAsyncNeverBlocksOrPanics(t *testing.T) {
	d := NewDispatcher(channels.NewMailer(&config.Configuration{}))

	// SMTP chưa cấu hình: job chỉ log và kết thúc, caller không bị chặn
	assert.NotPanics(t, func() {
		d.SendAsync(WelcomeEmail("alice@example.com", "Alice"))
	})

	// Cho goroutine chạy xong trước khi test kết thúc
	time.Sleep(50 * time.Millisecond)
}
