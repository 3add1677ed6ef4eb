// Package notifdto - DTO cho domain notification.
package notifdto

// NotifyInput tham số tạo một thông báo mới (gọi nội bộ từ workflow duyệt nội dung)
type NotifyInput struct {
	RecipientID      string `json:"recipientId" validate:"required"`
	ContentID        string `json:"contentId,omitempty"`
	ContentTitle     string `json:"contentTitle,omitempty"`
	Type             string `json:"type" validate:"required,oneof=submitted pending approved rejected"`
	Message          string `json:"message" validate:"required"`
	ApproverName     string `json:"approverName,omitempty"`
	ApproverComments string `json:"approverComments,omitempty"`
}

// UnreadCountResponse kết quả đếm thông báo chưa đọc
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// MarkAllReadResponse kết quả đánh dấu tất cả đã đọc
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
