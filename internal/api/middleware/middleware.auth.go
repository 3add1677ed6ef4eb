package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	authmodels "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
	"ecojourney/internal/logger"
	"ecojourney/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{
		UserCRUD: userService,
		// Cache user 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// getUser lấy user theo ID từ cache hoặc database
func (am *AuthManager) getUser(userID string) (*authmodels.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		user := cached.(authmodels.User)
		return &user, nil
	}

	user, err := am.UserCRUD.FindOneById(context.Background(), utility.String2ObjectID(userID))
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// InvalidateUser xóa user khỏi cache (gọi khi user bị đổi role hoặc vô hiệu hóa)
func (am *AuthManager) InvalidateUser(userID string) {
	am.Cache.Delete("auth_user:" + userID)
}

// Authenticate middleware xác thực JWT cho Fiber.
// Parse Bearer token, verify chữ ký HS256 và thời hạn, load user để đảm bảo
// còn tồn tại và đang hoạt động, rồi lưu userID + role vào context.
func Authenticate() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims := &authmodels.JwtClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid || claims.UID == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Load user để chắc chắn còn tồn tại và chưa bị vô hiệu hóa
		user, err := authManager.getUser(claims.UID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				HandleErrorResponse(c, common.ErrTokenInvalid)
				return nil
			}
			HandleErrorResponse(c, err)
			return nil
		}
		if !user.IsActive {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị vô hiệu hóa",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Role lấy từ database, không tin role trong token
		c.Locals("userID", user.ID.Hex())
		c.Locals("role", string(user.Role))
		c.Locals("user", *user)

		return c.Next()
	}
}

// RequireApprover middleware yêu cầu quyền duyệt nội dung (admin hoặc content_manager).
// Phải đứng sau Authenticate.
func RequireApprover() fiber.Handler {
	return func(c fiber.Ctx) error {
		role := roleFromContext(c)
		if !role.CanApprove() {
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}
		return c.Next()
	}
}

// RequireAdmin middleware yêu cầu quyền quản trị (admin).
// Phải đứng sau Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role := roleFromContext(c)
		if !role.CanAdminister() {
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}
		return c.Next()
	}
}

// roleFromContext đọc role đã được Authenticate lưu vào context
func roleFromContext(c fiber.Ctx) common.Role {
	roleStr, ok := c.Locals("role").(string)
	if !ok {
		return ""
	}
	return common.Role(roleStr)
}
