// Package contentdto - DTO cho domain content.
package contentdto

// ContentCreateInput dữ liệu gửi nội dung mới.
// Nội dung tạo qua API luôn vào trạng thái pending chờ duyệt.
type ContentCreateInput struct {
	Title        string   `json:"title" validate:"required,no_xss,max=200"`
	Description  string   `json:"description,omitempty" validate:"omitempty,no_xss,max=2000"`
	ContentType  string   `json:"contentType" validate:"required,oneof=image video audio document article"`
	CategoryID   string   `json:"categoryId,omitempty" validate:"omitempty,exists=content_categories"`
	FileURL      string   `json:"fileUrl,omitempty" validate:"omitempty,url"`
	FileName     string   `json:"fileName,omitempty" validate:"omitempty,no_xss"`
	FileType     string   `json:"fileType,omitempty"`
	FileSize     int64    `json:"fileSize,omitempty" validate:"omitempty,min=0"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	Tags         []string `json:"tags,omitempty" validate:"omitempty,dive,no_xss,max=50"`
}

// ContentUpdateInput dữ liệu sửa nội dung (chỉ creator hoặc admin, trước trạng thái cuối)
type ContentUpdateInput struct {
	Title        string   `json:"title,omitempty" validate:"omitempty,no_xss,max=200"`
	Description  string   `json:"description,omitempty" validate:"omitempty,no_xss,max=2000"`
	CategoryID   string   `json:"categoryId,omitempty" validate:"omitempty,exists=content_categories"`
	FileURL      string   `json:"fileUrl,omitempty" validate:"omitempty,url"`
	FileName     string   `json:"fileName,omitempty" validate:"omitempty,no_xss"`
	FileType     string   `json:"fileType,omitempty"`
	FileSize     int64    `json:"fileSize,omitempty" validate:"omitempty,min=0"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	Tags         []string `json:"tags,omitempty" validate:"omitempty,dive,no_xss,max=50"`
}

// DecisionInput dữ liệu kèm theo quyết định duyệt/từ chối
type DecisionInput struct {
	Comments string `json:"comments,omitempty" validate:"omitempty,no_xss,max=2000"`
}

// PublishResult kết quả thao tác xuất bản
type PublishResult struct {
	Published   bool   `json:"published"`
	PublishedAt *int64 `json:"publishedAt,omitempty"`
}
