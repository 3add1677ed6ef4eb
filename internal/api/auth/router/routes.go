// Package router đăng ký các route thuộc domain auth: đăng ký/đăng nhập,
// hồ sơ người dùng, quản trị user và đặt lại mật khẩu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "ecojourney/internal/api/auth/handler"
	basehdl "ecojourney/internal/api/base/handler"
	"ecojourney/internal/api/middleware"
	apirouter "ecojourney/internal/api/router"
)

// Register đăng ký tất cả route auth (public, profile, admin, reset) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	if err := registerPasswordResetRoutes(v1); err != nil {
		return err
	}
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route public, không cần token
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	// Route cần đăng nhập
	authMiddleware := middleware.Authenticate()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateProfile)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	authMiddleware := middleware.Authenticate()
	adminMiddleware := middleware.RequireAdmin()
	adminChain := []fiber.Handler{authMiddleware, adminMiddleware}

	// Alias cho profile dưới /users (cùng handler với /auth/profile)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PUT", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateProfile)

	// Quản trị user: chỉ admin. Đọc + xóa qua CRUD chung, tạo/sửa qua route riêng
	// để đi qua validate role và hash mật khẩu.
	adminUserConfig := apirouter.ReadOnlyConfig
	adminUserConfig.DelById = true
	apirouter.RegisterRouteWithMiddleware(router, "/users", "POST", "/create", adminChain, userHandler.HandleAdminCreateUser)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PUT", "/update/:id", adminChain, userHandler.HandleAdminUpdateUser)
	r.RegisterCRUDRoutes(router, "/users", userHandler, adminUserConfig, adminChain, adminChain)
	return nil
}

func registerPasswordResetRoutes(router fiber.Router) error {
	resetHandler, err := authhdl.NewPasswordResetHandler()
	if err != nil {
		return fmt.Errorf("failed to create password reset handler: %w", err)
	}

	// Route public: yêu cầu reset và xác nhận token đều không cần đăng nhập
	router.Post("/auth/forgot-password", resetHandler.HandleForgotPassword)
	router.Get("/auth/validate-reset-token/:token", resetHandler.HandleValidateResetToken)
	router.Post("/auth/reset-password", resetHandler.HandleResetPassword)
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}
