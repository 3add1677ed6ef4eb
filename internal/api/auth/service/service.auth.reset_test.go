package authsvc

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	basemock "ecojourney/internal/api/base/mock"
	basesvc "ecojourney/internal/api/base/service"
	"ecojourney/internal/common"
)

// newResetServiceWithToken tạo PasswordResetService trên một token record
// trong bộ nhớ; UpdateById áp các trường used/usedAt lên chính record đó.
func newResetServiceWithToken(record *models.PasswordResetToken, user *models.User) *PasswordResetService {
	tokenStore := &basemock.BaseService[models.PasswordResetToken]{
		FindOneFn: func(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.PasswordResetToken, error) {
			return *record, nil
		},
		UpdateByIdFn: func(ctx context.Context, id primitive.ObjectID, data interface{}) (models.PasswordResetToken, error) {
			if upd, ok := data.(*basesvc.UpdateData); ok {
				if used, ok := upd.Set["used"].(bool); ok {
					record.Used = used
				}
				if usedAt, ok := upd.Set["usedAt"].(int64); ok {
					record.UsedAt = &usedAt
				}
			}
			return *record, nil
		},
	}
	return &PasswordResetService{
		BaseServiceMongo: tokenStore,
		userService:      newUserServiceWithStore(user),
	}
}

func TestGenerateResetToken(t *testing.T) {
	token, err := generateResetToken()
	require.NoError(t, err)

	// 32 byte ngẫu nhiên = 64 ký tự hex
	assert.Len(t, token, 64)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestGenerateResetTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := generateResetToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token bị trùng")
		seen[token] = true
	}
}

func TestConfirmResetSingleUse(t *testing.T) {
	user := newStoredUser(t, "mật-khẩu-cũ")
	record := &models.PasswordResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     "abc123",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}
	svc := newResetServiceWithToken(record, user)
	ctx := context.Background()

	input := &authdto.ResetPasswordInput{Token: "abc123", NewPassword: "secret1"}
	require.NoError(t, svc.ConfirmReset(ctx, input))

	// Mật khẩu mới được hash và lưu, trạng thái khóa được xóa
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
	assert.True(t, record.Used)
	require.NotNil(t, record.UsedAt)

	// Token chỉ dùng được một lần
	err := svc.ConfirmReset(ctx, input)
	assert.ErrorIs(t, err, common.ErrResetTokenUsed)
}

func TestConfirmResetClearsLoginLock(t *testing.T) {
	user := newStoredUser(t, "mật-khẩu-cũ")
	user.LoginAttempts = MaxLoginAttempts
	user.IsLocked = true
	user.LockedUntil = time.Now().Add(LockDuration).UnixMilli()
	record := &models.PasswordResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     "abc123",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}
	svc := newResetServiceWithToken(record, user)

	require.NoError(t, svc.ConfirmReset(context.Background(), &authdto.ResetPasswordInput{
		Token: "abc123", NewPassword: "secret1",
	}))
	assert.False(t, user.IsLocked)
	assert.Equal(t, 0, user.LoginAttempts)
	assert.Zero(t, user.LockedUntil)
}

func TestValidateTokenExpired(t *testing.T) {
	user := newStoredUser(t, "mật-khẩu-cũ")
	record := &models.PasswordResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     "abc123",
		ExpiresAt: time.Now().Add(-time.Minute).UnixMilli(),
	}
	svc := newResetServiceWithToken(record, user)

	_, err := svc.ValidateToken(context.Background(), "abc123")
	assert.ErrorIs(t, err, common.ErrResetTokenInvalid)
}

func TestValidateTokenUnknown(t *testing.T) {
	svc := &PasswordResetService{
		BaseServiceMongo: &basemock.BaseService[models.PasswordResetToken]{},
	}

	_, err := svc.ValidateToken(context.Background(), "không-tồn-tại")
	assert.ErrorIs(t, err, common.ErrResetTokenInvalid)
}

func TestValidateTokenReturnsOwner(t *testing.T) {
	user := newStoredUser(t, "mật-khẩu-cũ")
	record := &models.PasswordResetToken{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     "abc123",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}
	svc := newResetServiceWithToken(record, user)

	owner, err := svc.ValidateToken(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, user.Email, owner.Email)
}
