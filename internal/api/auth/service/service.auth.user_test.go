package authsvc

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"ecojourney/config"
	models "ecojourney/internal/api/auth/models"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

func TestCreateToken(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      "test-secret-cho-unit-test",
		JwtExpireHours: 168,
	}

	user := &models.User{
		ID:   primitive.NewObjectID(),
		Role: common.RoleContentProducer,
	}

	svc := &UserService{}
	signed, err := svc.CreateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	// Token parse lại được với cùng secret và chứa đúng claims
	claims := &models.JwtClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret-cho-unit-test"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UID)
	assert.Equal(t, string(common.RoleContentProducer), claims.Role)

	// Hết hạn sau đúng số giờ cấu hình (sai số 1 phút)
	wantExpiry := time.Now().Add(168 * time.Hour)
	assert.WithinDuration(t, wantExpiry, claims.ExpiresAt.Time, time.Minute)
}

func TestCreateTokenWrongSecretFails(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      "test-secret-cho-unit-test",
		JwtExpireHours: 1,
	}

	svc := &UserService{}
	signed, err := svc.CreateToken(&models.User{ID: primitive.NewObjectID(), Role: common.RoleAdmin})
	require.NoError(t, err)

	claims := &models.JwtClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-khác"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashNeverPlaintext(t *testing.T) {
	password := "MậtKhẩuMạnh123!"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NotEqual(t, password, string(hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte(password)))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("sai-mật-khẩu")))
}
