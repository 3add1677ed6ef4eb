package contenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "ecojourney/internal/api/base/handler"
	contentdto "ecojourney/internal/api/content/dto"
	models "ecojourney/internal/api/content/models"
	contentsvc "ecojourney/internal/api/content/service"
)

// CategoryHandler xử lý các route danh mục nội dung
type CategoryHandler struct {
	*basehdl.BaseHandler[models.ContentCategory, contentdto.CategoryCreateInput, contentdto.CategoryUpdateInput]
	categoryService *contentsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.ContentCategory, contentdto.CategoryCreateInput, contentdto.CategoryUpdateInput](categoryService),
		categoryService: categoryService,
	}, nil
}

// HandleCreate tạo danh mục mới, tên danh mục là duy nhất
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contentdto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.Create(c.Context(), &input)
		h.HandleResponse(c, category, err)
		return nil
	})
}
