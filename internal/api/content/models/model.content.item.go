// Package models - model nội dung (ContentItem) thuộc domain content.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentStatus định nghĩa trạng thái vòng đời của nội dung
const (
	ContentStatusDraft     = "draft"     // Bản nháp, chưa gửi duyệt
	ContentStatusPending   = "pending"   // Đang chờ duyệt
	ContentStatusApproved  = "approved"  // Đã được duyệt, chờ xuất bản
	ContentStatusRejected  = "rejected"  // Bị từ chối
	ContentStatusPublished = "published" // Đã xuất bản (trạng thái cuối)
	ContentStatusArchived  = "archived"  // Đã lưu trữ (trạng thái cuối)
)

// ContentType định nghĩa loại nội dung đa phương tiện
const (
	ContentTypeImage    = "image"
	ContentTypeVideo    = "video"
	ContentTypeAudio    = "audio"
	ContentTypeDocument = "document"
	ContentTypeArticle  = "article"
)

// ContentItem đại diện cho một đơn vị nội dung do producer gửi lên.
// PublishedAt chỉ được gán khi và chỉ khi status là published.
// File được lưu ở dịch vụ ngoài; FileURL là tham chiếu bền vững tới file đó.
type ContentItem struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title" index:"text"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty" index:"text"`
	ContentType  string              `json:"contentType" bson:"contentType" index:"single:1"`
	CategoryID   *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`
	FileURL      string              `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	FileName     string              `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileType     string              `json:"fileType,omitempty" bson:"fileType,omitempty"`
	FileSize     int64               `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	ThumbnailURL string              `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Tags         []string            `json:"tags,omitempty" bson:"tags,omitempty"`
	Status       string              `json:"status" bson:"status" index:"single:1"`
	CreatorID    primitive.ObjectID  `json:"creatorId" bson:"creatorId" index:"single:1"`
	ViewCount    int64               `json:"viewCount" bson:"viewCount"`
	PublishedAt  *int64              `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt    int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt" bson:"updatedAt"`
}

// IsTerminal kiểm tra nội dung đã ở trạng thái cuối chưa (không còn chuyển tiếp)
func (c *ContentItem) IsTerminal() bool {
	return c.Status == ContentStatusPublished || c.Status == ContentStatusArchived
}

// IsDecidable kiểm tra nội dung có đang chờ quyết định duyệt/từ chối không
func (c *ContentItem) IsDecidable() bool {
	return c.Status == ContentStatusDraft || c.Status == ContentStatusPending
}
