package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authmodels "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	contentdto "ecojourney/internal/api/content/dto"
	contentsvc "ecojourney/internal/api/content/service"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
	"ecojourney/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi chạy ở chế độ INITMODE:
// tài khoản admin đầu tiên và bộ danh mục nội dung cơ bản. Idempotent.
func InitDefaultData() {
	log := logger.GetAppLogger()
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initAdminUser(ctx)
	initDefaultCategories(ctx)
}

// initAdminUser tạo tài khoản admin từ cấu hình nếu hệ thống chưa có admin nào
func initAdminUser(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Errorf("Failed to create user service for admin seed: %v", err)
		return
	}

	exists, err := userService.DocumentExists(ctx, bson.M{"role": common.RoleAdmin})
	if err != nil {
		log.Errorf("Failed to check existing admin: %v", err)
		return
	}
	if exists {
		log.Info("Admin user already exists, skipping seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("Failed to hash admin password: %v", err)
		return
	}

	admin, err := userService.InsertOne(ctx, authmodels.User{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "System",
		LastName:  "Administrator",
		Role:      common.RoleAdmin,
		IsActive:  true,
	})
	if err != nil {
		log.Errorf("Failed to seed admin user: %v", err)
		return
	}
	log.Infof("Seeded admin user %s (%s)", admin.Username, admin.ID.Hex())
}

// initDefaultCategories tạo bộ danh mục cơ bản nếu chưa có danh mục nào
func initDefaultCategories(ctx context.Context) {
	log := logger.GetAppLogger()

	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		log.Errorf("Failed to create category service for seed: %v", err)
		return
	}

	count, err := categoryService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Errorf("Failed to count categories: %v", err)
		return
	}
	if count > 0 {
		log.Info("Content categories already exist, skipping seed")
		return
	}

	defaults := []contentdto.CategoryCreateInput{
		{Name: "Hình ảnh", Description: "Ảnh chụp và đồ họa"},
		{Name: "Video", Description: "Video và phim ngắn"},
		{Name: "Âm thanh", Description: "Podcast và bản thu âm"},
		{Name: "Tài liệu", Description: "Tài liệu và báo cáo"},
		{Name: "Bài viết", Description: "Bài viết và tin tức"},
	}
	for _, input := range defaults {
		if _, err := categoryService.Create(ctx, &input); err != nil {
			log.Errorf("Failed to seed category %s: %v", input.Name, err)
			continue
		}
		log.Infof("Seeded category %s", input.Name)
	}
}
