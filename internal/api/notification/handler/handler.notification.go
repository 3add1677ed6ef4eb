// Package notifhdl - handler cho domain notification.
package notifhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "ecojourney/internal/api/base/handler"
	notifdto "ecojourney/internal/api/notification/dto"
	models "ecojourney/internal/api/notification/models"
	notifsvc "ecojourney/internal/api/notification/service"
	"ecojourney/internal/common"
	"ecojourney/internal/utility"
)

// NotificationHandler xử lý các route thông báo của người dùng đang đăng nhập
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, notifdto.NotifyInput, notifdto.NotifyInput]
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	return &NotificationHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.Notification, notifdto.NotifyInput, notifdto.NotifyInput](notificationService),
		notificationService: notificationService,
	}, nil
}

// HandleList trả về danh sách thông báo của người dùng đang đăng nhập (phân trang)
func (h *NotificationHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.notificationService.ListByRecipient(c.Context(), utility.String2ObjectID(userID), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUnreadCount trả về số thông báo chưa đọc
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		count, err := h.notificationService.UnreadCount(c.Context(), utility.String2ObjectID(userID))
		h.HandleResponse(c, notifdto.UnreadCountResponse{Unread: count}, err)
		return nil
	})
}

// HandleMarkRead đánh dấu một thông báo đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		notif, err := h.notificationService.MarkRead(c.Context(), utility.String2ObjectID(id), utility.String2ObjectID(userID))
		h.HandleResponse(c, notif, err)
		return nil
	})
}

// HandleMarkAllRead đánh dấu tất cả thông báo của người dùng là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		updated, err := h.notificationService.MarkAllRead(c.Context(), utility.String2ObjectID(userID))
		h.HandleResponse(c, notifdto.MarkAllReadResponse{Updated: updated}, err)
		return nil
	})
}

// HandleDelete xóa một thông báo của chính người dùng
func (h *NotificationHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.notificationService.Delete(c.Context(), utility.String2ObjectID(id), utility.String2ObjectID(userID))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
