package authdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecojourney/internal/global"
)

func TestRegisterPasswordPolicy(t *testing.T) {
	global.InitValidator()

	base := UserRegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Nguyễn",
	}

	t.Run("mật khẩu đơn giản đủ 6 ký tự được chấp nhận", func(t *testing.T) {
		input := base
		input.Password = "secret1"
		assert.NoError(t, global.Validate.Struct(&input))
	})

	t.Run("mật khẩu dưới 6 ký tự bị từ chối", func(t *testing.T) {
		input := base
		input.Password = "abc12"
		assert.Error(t, global.Validate.Struct(&input))
	})
}

func TestResetPasswordPolicy(t *testing.T) {
	global.InitValidator()

	token := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	assert.NoError(t, global.Validate.Struct(&ResetPasswordInput{
		Token:       token,
		NewPassword: "secret1",
	}))
	assert.Error(t, global.Validate.Struct(&ResetPasswordInput{
		Token:       token,
		NewPassword: "abc12",
	}))
}

func TestAdminCreateUserRequiresStrongPassword(t *testing.T) {
	global.InitValidator()

	input := AdminCreateUserInput{
		Username:  "manager01",
		Email:     "manager@example.com",
		Password:  "secret1",
		FirstName: "Minh",
		LastName:  "Trần",
		Role:      "content_manager",
	}
	assert.Error(t, global.Validate.Struct(&input))

	input.Password = "Secret123!"
	assert.NoError(t, global.Validate.Struct(&input))
}
