// Package authsvc - service đặt lại mật khẩu.
package authsvc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	basesvc "ecojourney/internal/api/base/service"
	"ecojourney/internal/common"
	"ecojourney/internal/delivery"
	"ecojourney/internal/global"
	"ecojourney/internal/logger"
)

// ResetTokenTTL thời gian hiệu lực của mã đặt lại mật khẩu
const ResetTokenTTL = time.Hour

// PasswordResetService xử lý quy trình quên mật khẩu / đặt lại mật khẩu
type PasswordResetService struct {
	basesvc.BaseServiceMongo[models.PasswordResetToken]
	userService *UserService
}

// NewPasswordResetService tạo mới PasswordResetService
func NewPasswordResetService() (*PasswordResetService, error) {
	tokenCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PasswordResetTokens)
	if !exist {
		return nil, fmt.Errorf("failed to get password_reset_tokens collection: %v", common.ErrNotFound)
	}
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}
	return &PasswordResetService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.PasswordResetToken](tokenCollection),
		userService:      userService,
	}, nil
}

// RequestReset tạo mã đặt lại mật khẩu cho email và gửi link qua email.
// Mỗi user chỉ có một token hiệu lực: yêu cầu mới thay thế token cũ.
// Email không tồn tại trả về lỗi 404.
func (s *PasswordResetService) RequestReset(ctx context.Context, input *authdto.ForgotPasswordInput) error {
	user, err := s.userService.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = s.Upsert(ctx, bson.M{"userId": user.ID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"userId":    user.ID,
			"token":     token,
			"expiresAt": now.Add(ResetTokenTTL).UnixMilli(),
			"used":      false,
		},
	})
	if err != nil {
		return err
	}

	resetURL := global.MongoDB_ServerConfig.FrontendURL + "/reset-password?token=" + token
	delivery.GetDispatcher(global.MongoDB_ServerConfig).SendAsync(
		delivery.PasswordResetEmail(user.Email, user.FullName(), resetURL),
	)

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
	}).Info("Yêu cầu đặt lại mật khẩu")

	return nil
}

// ValidateToken kiểm tra mã đặt lại mật khẩu còn hiệu lực hay không.
// Token không tồn tại, đã dùng, hoặc hết hạn đều trả về lỗi.
// Trả về user sở hữu token nếu hợp lệ.
func (s *PasswordResetService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	record, err := s.findValidToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	return s.userService.FindOneById(ctx, record.UserID)
}

// findValidToken tra cứu token và kiểm tra trạng thái used / expiry
func (s *PasswordResetService) findValidToken(ctx context.Context, token string) (models.PasswordResetToken, error) {
	record, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return models.PasswordResetToken{}, common.ErrResetTokenInvalid
		}
		return models.PasswordResetToken{}, err
	}

	if record.Used {
		return models.PasswordResetToken{}, common.ErrResetTokenUsed
	}
	if record.ExpiresAt < time.Now().UnixMilli() {
		return models.PasswordResetToken{}, common.ErrResetTokenInvalid
	}
	return record, nil
}

// ConfirmReset xác nhận mã và đặt mật khẩu mới.
// Token hết hạn hoặc không tồn tại trả về lỗi; token chỉ dùng được một lần.
// Sau khi đổi mật khẩu thành công, mọi trạng thái khóa đăng nhập được xóa.
func (s *PasswordResetService) ConfirmReset(ctx context.Context, input *authdto.ResetPasswordInput) error {
	record, err := s.findValidToken(ctx, input.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	// Đánh dấu token đã dùng trước khi đổi mật khẩu (single-use)
	usedAt := time.Now().UnixMilli()
	if _, err := s.UpdateById(ctx, record.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"used": true, "usedAt": usedAt},
	}); err != nil {
		return err
	}

	if _, err := s.userService.UpdateById(ctx, record.UserID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password":      string(hash),
			"loginAttempts": 0,
			"isLocked":      false,
		},
		Unset: map[string]interface{}{"lockedUntil": ""},
	}); err != nil {
		return err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"user_id": record.UserID.Hex(),
	}).Info("Đặt lại mật khẩu thành công")

	return nil
}

// generateResetToken sinh 32 byte ngẫu nhiên (crypto/rand) dưới dạng chuỗi hex 64 ký tự
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Lỗi sinh mã ngẫu nhiên", common.StatusInternalServerError, err)
	}
	return hex.EncodeToString(buf), nil
}
