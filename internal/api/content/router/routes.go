// Package router đăng ký các route thuộc domain content: nội dung,
// danh mục, duyệt/xuất bản và tải file.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "ecojourney/internal/api/content/handler"
	"ecojourney/internal/api/middleware"
	apirouter "ecojourney/internal/api/router"
)

// Register đăng ký các route content lên v1.
// Đọc nội dung là public; tạo/sửa/xóa cần đăng nhập;
// duyệt, từ chối và xuất bản cần quyền content_manager hoặc admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerContentRoutes(v1); err != nil {
		return err
	}
	if err := registerCategoryRoutes(v1, r); err != nil {
		return err
	}
	if err := registerDownloadRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerContentRoutes(router fiber.Router) error {
	contentHandler, err := contenthdl.NewContentHandler()
	if err != nil {
		return fmt.Errorf("failed to create content handler: %w", err)
	}

	authMiddleware := middleware.Authenticate()
	authChain := []fiber.Handler{authMiddleware}
	approverChain := []fiber.Handler{authMiddleware, middleware.RequireApprover()}

	// Đọc public
	router.Get("/content", contentHandler.HandleList)
	router.Get("/content/:id", contentHandler.HandleGetByID)

	// Gửi duyệt, sửa, xóa: cần đăng nhập (quyền sở hữu kiểm tra ở service)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "POST", "/", authChain, contentHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "PUT", "/:id", authChain, contentHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "DELETE", "/:id", authChain, contentHandler.HandleDelete)

	// Quyết định duyệt và xuất bản: content_manager hoặc admin
	apirouter.RegisterRouteWithMiddleware(router, "/content", "GET", "/:id/approvals", approverChain, contentHandler.HandleApprovalHistory)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "POST", "/:id/approve", approverChain, contentHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "POST", "/:id/reject", approverChain, contentHandler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(router, "/content", "POST", "/:id/publish", approverChain, contentHandler.HandlePublish)
	return nil
}

func registerCategoryRoutes(router fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := contenthdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}

	authMiddleware := middleware.Authenticate()
	adminChain := []fiber.Handler{authMiddleware, middleware.RequireAdmin()}

	// Danh mục đọc public, tạo/sửa chỉ admin
	router.Get("/content-categories", categoryHandler.Find)
	apirouter.RegisterRouteWithMiddleware(router, "/content-categories", "POST", "/", adminChain, categoryHandler.HandleCreate)
	r.RegisterCRUDRoutes(router, "/content-categories", categoryHandler, apirouter.CRUDConfig{
		UpdById: true, DelById: true,
	}, adminChain, adminChain)
	return nil
}

func registerDownloadRoutes(router fiber.Router) error {
	downloadHandler, err := contenthdl.NewDownloadHandler()
	if err != nil {
		return fmt.Errorf("failed to create download handler: %w", err)
	}
	router.Get("/download/:id", downloadHandler.HandleDownload)
	return nil
}
