// Package delivery gửi email theo kiểu fire-and-forget: nghiệp vụ chính không
// bao giờ thất bại vì email không gửi được.
package delivery

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"

	"ecojourney/config"
	"ecojourney/internal/delivery/channels"
	"ecojourney/internal/logger"
)

// Dispatcher gửi email bất đồng bộ với retry giới hạn.
// Mỗi email được gửi tối đa 2 lần (1 lần + 1 retry); nếu vẫn thất bại thì
// chỉ log lỗi, không propagate.
type Dispatcher struct {
	mailer *channels.Mailer
}

var (
	dispatcherInstance *Dispatcher
	dispatcherOnce     sync.Once
)

// GetDispatcher trả về instance duy nhất của Dispatcher (singleton pattern).
// Cấu hình SMTP lấy từ Configuration toàn cục tại lần gọi đầu tiên.
func GetDispatcher(cfg *config.Configuration) *Dispatcher {
	dispatcherOnce.Do(func() {
		dispatcherInstance = &Dispatcher{
			mailer: channels.NewMailer(cfg),
		}
	})
	return dispatcherInstance
}

// NewDispatcher tạo Dispatcher riêng (dùng trong test)
func NewDispatcher(mailer *channels.Mailer) *Dispatcher {
	return &Dispatcher{mailer: mailer}
}

// SendAsync gửi email trong goroutine riêng. Trả về ngay, không block caller.
func (d *Dispatcher) SendAsync(msg EmailMessage) {
	// Mỗi job có id riêng để trace log qua các lần retry
	jobID := uuid.NewString()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"job_id":    jobID,
					"recipient": msg.To,
					"panic":     r,
				}).Error("Panic khi gửi email")
			}
		}()
		d.send(jobID, msg)
	}()
}

// send gửi email với 1 lần retry sau 5 giây
func (d *Dispatcher) send(jobID string, msg EmailMessage) {
	log := logger.GetAppLogger()

	if !d.mailer.Enabled() {
		log.WithFields(logrus.Fields{
			"job_id":    jobID,
			"recipient": msg.To,
			"subject":   msg.Subject,
		}).Info("SMTP chưa cấu hình, bỏ qua gửi email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backoff := retry.WithMaxRetries(1, retry.NewConstant(5*time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if sendErr := d.mailer.SendEmail(msg.To, msg.Subject, msg.HTML); sendErr != nil {
			return retry.RetryableError(sendErr)
		}
		return nil
	})

	if err != nil {
		// Gửi thất bại sau retry: chỉ log, nghiệp vụ chính đã hoàn tất
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"job_id":    jobID,
			"recipient": msg.To,
			"subject":   msg.Subject,
			"error":     err.Error(),
		}).Error("Gửi email thất bại sau retry")
		return
	}

	log.WithFields(logrus.Fields{
		"job_id":    jobID,
		"recipient": msg.To,
		"subject":   msg.Subject,
	}).Info("Đã gửi email")
}
