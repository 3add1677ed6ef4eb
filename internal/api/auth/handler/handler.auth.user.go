// Package authhdl - handler cho domain auth.
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	basehdl "ecojourney/internal/api/base/handler"
	"ecojourney/internal/api/middleware"
	"ecojourney/internal/common"
	"ecojourney/internal/utility"
)

// UserHandler xử lý các route đăng ký, đăng nhập và hồ sơ người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.AdminCreateUserInput, authdto.AdminUpdateUserInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.AdminCreateUserInput, authdto.AdminUpdateUserInput](userService),
		userService: userService,
	}, nil
}

// HandleRegister đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin đăng nhập, trả về JWT token và thông tin user
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), &input, c.IP())
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetProfile trả về hồ sơ của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), utility.String2ObjectID(userID))
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật hồ sơ của người dùng đang đăng nhập
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("userID").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		var input authdto.UserUpdateProfileInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateProfile(c.Context(), utility.String2ObjectID(userID), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminCreateUser tạo user mới với role chỉ định (route admin)
func (h *UserHandler) HandleAdminCreateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.AdminCreateUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.AdminCreateUser(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleAdminUpdateUser cập nhật user theo ID (route admin)
func (h *UserHandler) HandleAdminUpdateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input authdto.AdminUpdateUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.AdminUpdateUser(c.Context(), utility.String2ObjectID(id), &input)
		if err == nil {
			// Đổi role hoặc vô hiệu hóa phải có hiệu lực ngay, không chờ cache hết hạn
			middleware.GetAuthManager().InvalidateUser(id)
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}
