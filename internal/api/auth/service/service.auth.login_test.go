package authsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"ecojourney/config"
	authdto "ecojourney/internal/api/auth/dto"
	models "ecojourney/internal/api/auth/models"
	basemock "ecojourney/internal/api/base/mock"
	basesvc "ecojourney/internal/api/base/service"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

// newUserServiceWithStore tạo UserService trên một user duy nhất trong bộ nhớ.
// UpdateById áp các trường $set/$unset mà Login dùng lên chính user đó.
func newUserServiceWithStore(user *models.User) *UserService {
	store := &basemock.BaseService[models.User]{
		FindOneFn: func(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.User, error) {
			return *user, nil
		},
		FindOneByIdFn: func(ctx context.Context, id primitive.ObjectID) (models.User, error) {
			return *user, nil
		},
		UpdateByIdFn: func(ctx context.Context, id primitive.ObjectID, data interface{}) (models.User, error) {
			upd, ok := data.(*basesvc.UpdateData)
			if !ok {
				return *user, nil
			}
			for k, v := range upd.Set {
				switch k {
				case "loginAttempts":
					user.LoginAttempts = v.(int)
				case "isLocked":
					user.IsLocked = v.(bool)
				case "lockedUntil":
					user.LockedUntil = v.(int64)
				case "lastLoginAt":
					user.LastLoginAt = v.(int64)
				case "lastLoginIp":
					user.LastLoginIP = v.(string)
				case "password":
					user.Password = v.(string)
				}
			}
			for k := range upd.Unset {
				if k == "lockedUntil" {
					user.LockedUntil = 0
				}
			}
			return *user, nil
		},
	}
	return &UserService{BaseServiceMongo: store}
}

func newStoredUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hash),
		Role:     common.RoleContentProducer,
		IsActive: true,
	}
}

func setTestConfig() {
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      "test-secret-cho-unit-test",
		JwtExpireHours: 168,
	}
}

func TestLoginLocksAfterMaxFailures(t *testing.T) {
	setTestConfig()
	user := newStoredUser(t, "secret1")
	svc := newUserServiceWithStore(user)
	ctx := context.Background()

	wrong := &authdto.UserLoginInput{Identifier: "alice", Password: "sai-mật-khẩu"}

	for i := 1; i < MaxLoginAttempts; i++ {
		_, err := svc.Login(ctx, wrong, "10.0.0.1")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
		assert.Equal(t, i, user.LoginAttempts)
		assert.False(t, user.IsLocked)
	}

	// Lần sai thứ MaxLoginAttempts khóa tài khoản
	_, err := svc.Login(ctx, wrong, "10.0.0.1")
	assert.ErrorIs(t, err, common.ErrTooManyAttempts)
	assert.True(t, user.IsLocked)
	assert.Greater(t, user.LockedUntil, time.Now().UnixMilli())

	// Đang khóa thì cả mật khẩu đúng cũng bị từ chối
	_, err = svc.Login(ctx, &authdto.UserLoginInput{Identifier: "alice", Password: "secret1"}, "10.0.0.1")
	assert.ErrorIs(t, err, common.ErrAccountLocked)
}

func TestLoginWrongPasswordAfterCooldownRelocks(t *testing.T) {
	setTestConfig()
	user := newStoredUser(t, "secret1")
	user.LoginAttempts = MaxLoginAttempts
	user.IsLocked = true
	user.LockedUntil = time.Now().Add(-time.Minute).UnixMilli()
	svc := newUserServiceWithStore(user)

	// Hết thời gian khóa mà vẫn sai mật khẩu: khóa lại ngay,
	// không được cấp lại đủ MaxLoginAttempts lượt đoán mới
	_, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Identifier: "alice", Password: "vẫn-sai",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, common.ErrTooManyAttempts)
	assert.True(t, user.IsLocked)
	assert.Equal(t, MaxLoginAttempts+1, user.LoginAttempts)
	assert.Greater(t, user.LockedUntil, time.Now().UnixMilli())
}

func TestLoginSuccessAfterCooldownClearsLock(t *testing.T) {
	setTestConfig()
	user := newStoredUser(t, "secret1")
	user.LoginAttempts = MaxLoginAttempts
	user.IsLocked = true
	user.LockedUntil = time.Now().Add(-time.Minute).UnixMilli()
	svc := newUserServiceWithStore(user)

	result, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Identifier: "alice", Password: "secret1",
	}, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 0, user.LoginAttempts)
	assert.False(t, user.IsLocked)
	assert.Zero(t, user.LockedUntil)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	setTestConfig()
	svc := &UserService{BaseServiceMongo: &basemock.BaseService[models.User]{}}

	// Không tiết lộ identifier hay mật khẩu sai
	_, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Identifier: "không-tồn-tại", Password: "gì-cũng-được",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	setTestConfig()
	user := newStoredUser(t, "secret1")
	user.IsActive = false
	svc := newUserServiceWithStore(user)

	_, err := svc.Login(context.Background(), &authdto.UserLoginInput{
		Identifier: "alice", Password: "secret1",
	}, "10.0.0.1")
	require.Error(t, err)
	assert.Equal(t, common.StatusForbidden, common.StatusOf(err))
}

func TestRegisterDuplicate(t *testing.T) {
	setTestConfig()
	svc := &UserService{BaseServiceMongo: &basemock.BaseService[models.User]{
		DocumentExistsFn: func(ctx context.Context, filter interface{}) (bool, error) {
			return true, nil
		},
	}}

	_, err := svc.Register(context.Background(), &authdto.UserRegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
		FirstName: "Alice", LastName: "Nguyễn",
	})
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	setTestConfig()
	var inserted models.User
	svc := &UserService{BaseServiceMongo: &basemock.BaseService[models.User]{
		InsertOneFn: func(ctx context.Context, data models.User) (models.User, error) {
			data.ID = primitive.NewObjectID()
			inserted = data
			return data, nil
		},
	}}

	created, err := svc.Register(context.Background(), &authdto.UserRegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
		FirstName: "Alice", LastName: "Nguyễn",
	})
	require.NoError(t, err)
	assert.Equal(t, common.RoleContentProducer, created.Role)
	assert.NotEqual(t, "secret1", inserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("secret1")))
}
