package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"ecojourney/config"
	authmodels "ecojourney/internal/api/auth/models"
	contentmodels "ecojourney/internal/api/content/models"
	notifmodels "ecojourney/internal/api/notification/models"
	"ecojourney/internal/database"
	"ecojourney/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator với các custom rule
	initConfig()           // Cấu hình server, thiếu JWT_SECRET là lỗi fatal
	initDatabase_MongoDB() // Kết nối database và tạo index
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Contents = "contents"
	global.MongoDB_ColNames.ContentCategories = "content_categories"
	global.MongoDB_ColNames.ContentApprovals = "content_approvals"
	global.MongoDB_ColNames.Notifications = "notifications"
	global.MongoDB_ColNames.PasswordResetTokens = "password_reset_tokens"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (no_xss, strong_password, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình từ env. Config nil nghĩa là thiếu biến bắt buộc
// (JWT_SECRET, thông tin MongoDB) và server phải dừng ngay.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo collections và tạo index theo struct tag
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PasswordResetTokens), authmodels.PasswordResetToken{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contents), contentmodels.ContentItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ContentCategories), contentmodels.ContentCategory{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ContentApprovals), contentmodels.ApprovalRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Notifications), notifmodels.Notification{})
}
