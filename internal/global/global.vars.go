package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"ecojourney/config"
	"ecojourney/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users               string // Tên collection cho người dùng
	Contents            string // Tên collection cho nội dung đa phương tiện
	ContentCategories   string // Tên collection cho danh mục nội dung
	ContentApprovals    string // Tên collection cho lịch sử duyệt nội dung
	Notifications       string // Tên collection cho thông báo trong ứng dụng
	PasswordResetTokens string // Tên collection cho mã đặt lại mật khẩu
}

// Các biến toàn cục
var Validate *validator.Validate                                        // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                       // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                          // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
