// Package contenthdl - handler cho domain content.
package contenthdl

import (
	"github.com/gofiber/fiber/v3"

	authmodels "ecojourney/internal/api/auth/models"
	basehdl "ecojourney/internal/api/base/handler"
	contentdto "ecojourney/internal/api/content/dto"
	models "ecojourney/internal/api/content/models"
	contentsvc "ecojourney/internal/api/content/service"
	"ecojourney/internal/common"
	"ecojourney/internal/logger"
	"ecojourney/internal/utility"
)

// ContentHandler xử lý các route vòng đời nội dung
type ContentHandler struct {
	*basehdl.BaseHandler[models.ContentItem, contentdto.ContentCreateInput, contentdto.ContentUpdateInput]
	contentService *contentsvc.ContentService
}

// NewContentHandler tạo mới ContentHandler
func NewContentHandler() (*ContentHandler, error) {
	contentService, err := contentsvc.NewContentService()
	if err != nil {
		return nil, err
	}
	return &ContentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ContentItem, contentdto.ContentCreateInput, contentdto.ContentUpdateInput](contentService),
		contentService: contentService,
	}, nil
}

// actorFromContext lấy thông tin người dùng đã xác thực từ context
func actorFromContext(c fiber.Ctx) (*authmodels.User, bool) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// HandleSubmit tạo nội dung mới, vào trạng thái pending chờ duyệt
func (h *ContentHandler) HandleSubmit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, ok := actorFromContext(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		var input contentdto.ContentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.contentService.Submit(c.Context(), actor, &input)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleGetByID trả về một nội dung theo ID, kèm tăng lượt xem (bất đồng bộ)
func (h *ContentHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		item, err := h.contentService.FindByID(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleList trả về danh sách nội dung theo bộ lọc status/category/creator/search
func (h *ContentHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := &contentsvc.ContentListQuery{
			Status:     c.Query("status"),
			CategoryID: c.Query("categoryId"),
			CreatorID:  c.Query("creatorId"),
			Search:     c.Query("search"),
			Page:       page,
			Limit:      limit,
		}

		result, err := h.contentService.List(c.Context(), query)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate sửa nội dung (chỉ creator hoặc admin, trước trạng thái cuối)
func (h *ContentHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, ok := actorFromContext(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input contentdto.ContentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.contentService.UpdateOwned(c.Context(), utility.String2ObjectID(id), actor, &input)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleDelete xóa nội dung (creator trước trạng thái cuối, admin mọi trạng thái)
func (h *ContentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, ok := actorFromContext(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.contentService.DeleteOwned(c.Context(), utility.String2ObjectID(id), actor)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleApprovalHistory trả về lịch sử xét duyệt của một nội dung
// (chỉ content_manager hoặc admin)
func (h *ContentHandler) HandleApprovalHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		records, err := h.contentService.ApprovalHistory(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, records, err)
		return nil
	})
}

// HandleApprove duyệt nội dung (chỉ content_manager hoặc admin)
func (h *ContentHandler) HandleApprove(c fiber.Ctx) error {
	return h.handleDecision(c, true)
}

// HandleReject từ chối nội dung kèm nhận xét (chỉ content_manager hoặc admin)
func (h *ContentHandler) HandleReject(c fiber.Ctx) error {
	return h.handleDecision(c, false)
}

func (h *ContentHandler) handleDecision(c fiber.Ctx, approve bool) error {
	return h.SafeHandler(c, func() error {
		actor, ok := actorFromContext(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input contentdto.DecisionInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			if err := h.ValidateInput(&input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		var item *models.ContentItem
		var err error
		action := "content_approve"
		if approve {
			item, err = h.contentService.Approve(c.Context(), utility.String2ObjectID(id), actor, input.Comments)
		} else {
			action = "content_reject"
			item, err = h.contentService.Reject(c.Context(), utility.String2ObjectID(id), actor, input.Comments)
		}
		if err == nil {
			logger.LogAction(action, "content", id, c, map[string]interface{}{
				"comments": input.Comments,
			})
		}
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandlePublish xuất bản nội dung đã duyệt (chỉ content_manager hoặc admin)
func (h *ContentHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actor, ok := actorFromContext(c)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		result, err := h.contentService.Publish(c.Context(), utility.String2ObjectID(id), actor)
		if err == nil {
			logger.LogAction("content_publish", "content", id, c, nil)
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}
