package contentdto

// CategoryCreateInput dữ liệu tạo danh mục nội dung
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss,max=100"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,lowercase,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss,max=500"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục nội dung
type CategoryUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss,max=100"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,lowercase,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss,max=500"`
}
