// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ecojourney/internal/api/middleware"
	notifhdl "ecojourney/internal/api/notification/handler"
	apirouter "ecojourney/internal/api/router"
)

// Register đăng ký các route thông báo lên v1. Tất cả đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	authChain := []fiber.Handler{middleware.Authenticate()}
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/", authChain, notificationHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/count/unread", authChain, notificationHandler.HandleUnreadCount)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PATCH", "/read/all", authChain, notificationHandler.HandleMarkAllRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PATCH", "/:id/read", authChain, notificationHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "DELETE", "/:id", authChain, notificationHandler.HandleDelete)
	return nil
}
