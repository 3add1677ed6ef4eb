package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	safe := []string{
		"Hành trình xanh qua rừng ngập mặn",
		"Tài liệu hướng dẫn phân loại rác",
		"",
	}
	for _, v := range safe {
		assert.NoError(t, Validate.Var(v, "no_xss"), v)
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"javascript:void(0)",
		`<img src=x onerror=alert(1)>`,
		"eval(document.cookie)",
		"<iframe src='http://x'></iframe>",
	}
	for _, v := range dangerous {
		assert.Error(t, Validate.Var(v, "no_xss"), v)
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	t.Run("accepted", func(t *testing.T) {
		// Tối thiểu 8 ký tự và đạt 3/4 nhóm ký tự
		passwords := []string{
			"Abcdef12",
			"abcdef1!",
			"ABCDEF1!",
			"MậtKhẩu123!",
		}
		for _, p := range passwords {
			assert.NoError(t, Validate.Var(p, "strong_password"), p)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		passwords := []string{
			"Ab1!",       // quá ngắn
			"abcdefgh",   // chỉ 1 nhóm
			"abcdefg1",   // chỉ 2 nhóm
			"ABCDEFGH",   // chỉ 1 nhóm
			"12345678",   // chỉ 1 nhóm
		}
		for _, p := range passwords {
			assert.Error(t, Validate.Var(p, "strong_password"), p)
		}
	})
}

func TestValidateExistsWithoutRegistry(t *testing.T) {
	InitValidator()

	// Giá trị rỗng được bỏ qua (dành cho field optional)
	assert.NoError(t, Validate.Var("", "exists=content_categories"))

	// ObjectID sai định dạng luôn bị từ chối
	assert.Error(t, Validate.Var("not-a-hex-id", "exists=content_categories"))
}
