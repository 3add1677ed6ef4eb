package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu không hợp lệ", StatusBadRequest, nil)

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Dữ liệu không hợp lệ", appErr.Message)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)
}

func TestErrorIs(t *testing.T) {
	t.Run("same code and message match", func(t *testing.T) {
		err := NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
		assert.True(t, errors.Is(err, ErrTokenInvalid))
	})

	t.Run("different message does not match", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTokenInvalid, ErrTokenExpired))
	})

	t.Run("plain error does not match", func(t *testing.T) {
		assert.False(t, errors.Is(errors.New("token không hợp lệ"), ErrTokenInvalid))
	})
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusNotFound, StatusOf(ErrNotFound))
	assert.Equal(t, StatusForbidden, StatusOf(ErrAccountLocked))
	assert.Equal(t, StatusUnauthorized, StatusOf(ErrInvalidCredentials))
	assert.Equal(t, StatusBadRequest, StatusOf(ErrResetTokenUsed))

	// Lỗi không xác định mặc định là 500
	assert.Equal(t, StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestConvertMongoError(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, ConvertMongoError(nil))
	})

	t.Run("ErrNotFound passthrough", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))
	})

	t.Run("app error passthrough", func(t *testing.T) {
		err := NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
		assert.Equal(t, err, ConvertMongoError(err))
	})

	t.Run("command error mapped by code range", func(t *testing.T) {
		tests := []struct {
			code int32
			want error
		}{
			{150, ErrMongoConnection},
			{250, ErrMongoAuth},
			{350, ErrMongoQuery},
			{450, ErrMongoWrite},
			{11000, ErrMongoSystem},
		}
		for _, tt := range tests {
			t.Run(fmt.Sprintf("code_%d", tt.code), func(t *testing.T) {
				got := ConvertMongoError(mongo.CommandError{Code: tt.code})
				assert.True(t, errors.Is(got, tt.want))
			})
		}
	})

	t.Run("unknown error becomes generic database error", func(t *testing.T) {
		got := ConvertMongoError(errors.New("socket closed"))
		var appErr *Error
		assert.True(t, errors.As(got, &appErr))
		assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	})
}
