package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	basehdl "ecojourney/internal/api/base/handler"
)

// PasswordResetHandler xử lý các route quên mật khẩu / đặt lại mật khẩu
type PasswordResetHandler struct {
	*basehdl.BaseHandler[models.PasswordResetToken, authdto.ForgotPasswordInput, authdto.ResetPasswordInput]
	resetService *authsvc.PasswordResetService
}

// NewPasswordResetHandler tạo mới PasswordResetHandler
func NewPasswordResetHandler() (*PasswordResetHandler, error) {
	resetService, err := authsvc.NewPasswordResetService()
	if err != nil {
		return nil, err
	}
	return &PasswordResetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.PasswordResetToken, authdto.ForgotPasswordInput, authdto.ResetPasswordInput](resetService),
		resetService: resetService,
	}, nil
}

// HandleForgotPassword tạo mã đặt lại mật khẩu và gửi link qua email
func (h *PasswordResetHandler) HandleForgotPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ForgotPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.resetService.RequestReset(c.Context(), &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleValidateResetToken kiểm tra mã đặt lại mật khẩu có còn hiệu lực không.
// Trả về email của user sở hữu token để frontend hiển thị.
func (h *PasswordResetHandler) HandleValidateResetToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token := c.Params("token")

		user, err := h.resetService.ValidateToken(c.Context(), token)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"valid": true, "email": user.Email}, nil)
		return nil
	})
}

// HandleResetPassword xác nhận mã và đặt mật khẩu mới
func (h *PasswordResetHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.resetService.ConfirmReset(c.Context(), &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
