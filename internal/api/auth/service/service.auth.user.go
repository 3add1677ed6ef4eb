// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	basesvc "ecojourney/internal/api/base/service"
	"ecojourney/internal/common"
	"ecojourney/internal/delivery"
	"ecojourney/internal/global"
	"ecojourney/internal/logger"
)

const (
	// MaxLoginAttempts số lần đăng nhập sai liên tiếp trước khi khóa tài khoản
	MaxLoginAttempts = 5
	// LockDuration thời gian khóa tài khoản sau khi vượt ngưỡng
	LockDuration = 15 * time.Minute
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng.
// Phụ thuộc qua interface BaseServiceMongo để tầng lưu trữ thay được trong test.
type UserService struct {
	basesvc.BaseServiceMongo[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới với role mặc định content_producer.
// Mật khẩu được hash bằng bcrypt trước khi lưu. Gửi email chào mừng bất đồng bộ.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra username hoặc email đã tồn tại chưa
	exists, err := s.DocumentExists(ctx, bson.M{"$or": []bson.M{
		{"username": input.Username},
		{"email": input.Email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      common.RoleContentProducer,
		IsActive:  true,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	delivery.GetDispatcher(global.MongoDB_ServerConfig).SendAsync(
		delivery.WelcomeEmail(created.Email, created.FullName()),
	)

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": created.ID.Hex(),
		"email":   created.Email,
	}).Info("Đăng ký tài khoản mới")

	return &created, nil
}

// Login xác thực đăng nhập và trả về JWT token.
// Tài khoản đang khóa tạm thời bị từ chối trước khi kiểm tra mật khẩu.
// Sai mật khẩu MaxLoginAttempts lần liên tiếp sẽ khóa tài khoản trong LockDuration.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput, clientIP string) (*authdto.UserLoginResponse, error) {
	// Identifier là email hoặc username, không tiết lộ trường nào sai
	user, err := s.FindOne(ctx, bson.M{"$or": []bson.M{
		{"email": input.Identifier},
		{"username": input.Identifier},
	}}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()

	// Tài khoản đang bị khóa tạm thời.
	// Hết thời gian khóa KHÔNG reset bộ đếm: chỉ đăng nhập thành công mới xóa
	// trạng thái khóa, sai mật khẩu ngay sau thời gian khóa sẽ khóa lại lập tức.
	if user.IsLocked && user.LockedUntil > now.UnixMilli() {
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"email":   user.Email,
			"ip":      clientIP,
		}).Warn("Đăng nhập bị từ chối: tài khoản đang khóa")
		return nil, common.ErrAccountLocked
	}

	if !user.IsActive {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị vô hiệu hóa", common.StatusForbidden, nil)
	}

	// Kiểm tra mật khẩu
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		attempts := user.LoginAttempts + 1
		update := &basesvc.UpdateData{
			Set: map[string]interface{}{"loginAttempts": attempts},
		}
		if attempts >= MaxLoginAttempts {
			update.Set["isLocked"] = true
			update.Set["lockedUntil"] = now.Add(LockDuration).UnixMilli()
		}
		if _, updErr := s.UpdateById(ctx, user.ID, update); updErr != nil {
			return nil, updErr
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"user_id":  user.ID.Hex(),
			"email":    user.Email,
			"attempts": attempts,
			"ip":       clientIP,
		}).Warn("Đăng nhập sai mật khẩu")

		if attempts >= MaxLoginAttempts {
			return nil, common.ErrTooManyAttempts
		}
		return nil, common.ErrInvalidCredentials
	}

	// Đăng nhập thành công: reset bộ đếm, ghi nhận thời điểm và IP
	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"loginAttempts": 0,
			"isLocked":      false,
			"lastLoginAt":   now.UnixMilli(),
			"lastLoginIp":   clientIP,
		},
		Unset: map[string]interface{}{"lockedUntil": ""},
	})
	if err != nil {
		return nil, err
	}

	token, err := s.CreateToken(&updated)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": updated.ID.Hex(),
		"email":   updated.Email,
		"ip":      clientIP,
	}).Info("Đăng nhập thành công")

	return &authdto.UserLoginResponse{Token: token, User: updated}, nil
}

// CreateToken tạo JWT token HS256 chứa {uid, role}, hết hạn theo cấu hình (mặc định 7 ngày)
func (s *UserService) CreateToken(user *models.User) (string, error) {
	cfg := global.MongoDB_ServerConfig
	now := time.Now()
	claims := models.JwtClaims{
		UID:  user.ID.Hex(),
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JwtExpireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// UpdateProfile cập nhật hồ sơ cá nhân của người dùng đang đăng nhập
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserUpdateProfileInput) (*models.User, error) {
	set := make(map[string]interface{})
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.Bio != "" {
		set["bio"] = input.Bio
	}
	if input.Organization != "" {
		set["organization"] = input.Organization
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if len(set) == 0 {
		user, err := s.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminCreateUser tạo user mới với role chỉ định (chỉ admin)
func (s *UserService) AdminCreateUser(ctx context.Context, input *authdto.AdminCreateUserInput) (*models.User, error) {
	role, ok := common.ParseRole(input.Role)
	if !ok {
		return nil, common.ErrInvalidInput
	}

	exists, err := s.DocumentExists(ctx, bson.M{"$or": []bson.M{
		{"username": input.Username},
		{"email": input.Email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		IsActive:  true,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": created.ID.Hex(),
		"email":   created.Email,
		"role":    string(created.Role),
	}).Info("Admin tạo user mới")

	return &created, nil
}

// AdminUpdateUser cập nhật thông tin user theo ID (chỉ admin)
func (s *UserService) AdminUpdateUser(ctx context.Context, userID primitive.ObjectID, input *authdto.AdminUpdateUserInput) (*models.User, error) {
	set := make(map[string]interface{})
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.Role != "" {
		role, ok := common.ParseRole(input.Role)
		if !ok {
			return nil, common.ErrInvalidInput
		}
		set["role"] = role
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
