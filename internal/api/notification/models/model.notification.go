// Package models - model thông báo trong ứng dụng (Notification).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType định nghĩa các loại thông báo theo sự kiện nội dung
const (
	NotificationTypeSubmitted = "submitted" // Nội dung vừa được gửi duyệt
	NotificationTypePending   = "pending"   // Nội dung đang chờ duyệt
	NotificationTypeApproved  = "approved"  // Nội dung được duyệt
	NotificationTypeRejected  = "rejected"  // Nội dung bị từ chối
)

// Notification đại diện cho một thông báo gửi tới người dùng.
// Chỉ người nhận được phép đánh dấu đã đọc hoặc xóa thông báo của mình.
type Notification struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RecipientID      primitive.ObjectID `json:"recipientId" bson:"recipientId" index:"single:1"`
	RecipientEmail   string             `json:"recipientEmail,omitempty" bson:"recipientEmail,omitempty"`
	ContentID        primitive.ObjectID `json:"contentId,omitempty" bson:"contentId,omitempty" index:"single:1"`
	ContentTitle     string             `json:"contentTitle,omitempty" bson:"contentTitle,omitempty"`
	Type             string             `json:"type" bson:"type" index:"single:1"`
	Message          string             `json:"message" bson:"message"`
	ApproverName     string             `json:"approverName,omitempty" bson:"approverName,omitempty"`
	ApproverComments string             `json:"approverComments,omitempty" bson:"approverComments,omitempty"`
	IsRead           bool               `json:"isRead" bson:"isRead" index:"single:1"`
	ReadAt           *int64             `json:"readAt,omitempty" bson:"readAt,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValidNotificationType kiểm tra chuỗi có thuộc tập loại thông báo không
func IsValidNotificationType(t string) bool {
	switch t {
	case NotificationTypeSubmitted, NotificationTypePending, NotificationTypeApproved, NotificationTypeRejected:
		return true
	}
	return false
}
