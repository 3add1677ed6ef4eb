// Package notifsvc - service thông báo trong ứng dụng.
package notifsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "ecojourney/internal/api/base/models"
	basesvc "ecojourney/internal/api/base/service"
	models "ecojourney/internal/api/notification/models"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

// NotificationService là service quản lý thông báo của người dùng
type NotificationService struct {
	basesvc.BaseServiceMongo[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Notification](collection),
	}, nil
}

// Notify ghi một thông báo mới cho người nhận.
// Được gọi đồng bộ ngay sau khi quyết định duyệt/từ chối được lưu;
// email đi kèm do tầng delivery xử lý riêng, lỗi email không ảnh hưởng bản ghi này.
func (s *NotificationService) Notify(ctx context.Context, notif models.Notification) (models.Notification, error) {
	if notif.RecipientID.IsZero() {
		return models.Notification{}, common.ErrRequiredField
	}
	if !models.IsValidNotificationType(notif.Type) {
		return models.Notification{}, common.ErrInvalidInput
	}
	notif.IsRead = false
	notif.ReadAt = nil
	return s.InsertOne(ctx, notif)
}

// ListByRecipient trả về danh sách thông báo của người nhận, mới nhất trước
func (s *NotificationService) ListByRecipient(ctx context.Context, recipientID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Notification], error) {
	filter := bson.M{"recipientId": recipientID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UnreadCount đếm số thông báo chưa đọc của người nhận
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"recipientId": recipientID,
		"isRead":      false,
	})
}

// MarkRead đánh dấu một thông báo đã đọc.
// Filter theo cả recipientId nên người khác không thao tác được thông báo không thuộc về mình.
func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID primitive.ObjectID) (models.Notification, error) {
	return s.UpdateOne(ctx,
		bson.M{"_id": id, "recipientId": recipientID},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"isRead": true,
				"readAt": time.Now().UnixMilli(),
			},
		},
		nil,
	)
}

// MarkAllRead đánh dấu toàn bộ thông báo chưa đọc của người nhận là đã đọc,
// trả về số bản ghi được cập nhật
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	return s.UpdateMany(ctx,
		bson.M{"recipientId": recipientID, "isRead": false},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"isRead": true,
				"readAt": time.Now().UnixMilli(),
			},
		},
		nil,
	)
}

// Delete xóa một thông báo của chính người nhận
func (s *NotificationService) Delete(ctx context.Context, id, recipientID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id, "recipientId": recipientID})
}
