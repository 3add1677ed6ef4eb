// Package authdto - DTO cho domain auth.
package authdto

import authmodels "ecojourney/internal/api/auth/models"

// UserRegisterInput dữ liệu đăng ký tài khoản.
// Mật khẩu tự đặt chỉ yêu cầu độ dài tối thiểu; chính sách strong_password
// áp dụng cho tài khoản do admin cấp.
type UserRegisterInput struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,no_xss"`
	LastName  string `json:"lastName" validate:"required,no_xss"`
}

// UserLoginInput dữ liệu đăng nhập.
// Identifier chấp nhận email hoặc username.
type UserLoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UserLoginResponse kết quả đăng nhập: JWT token và thông tin user
type UserLoginResponse struct {
	Token string           `json:"token"`
	User  authmodels.User  `json:"user"`
}

// UserUpdateProfileInput dữ liệu cập nhật hồ sơ cá nhân
type UserUpdateProfileInput struct {
	FirstName    string `json:"firstName,omitempty" validate:"omitempty,no_xss"`
	LastName     string `json:"lastName,omitempty" validate:"omitempty,no_xss"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,no_xss"`
	Organization string `json:"organization,omitempty" validate:"omitempty,no_xss"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,no_xss"`
}

// AdminCreateUserInput dữ liệu tạo user mới (chỉ admin)
type AdminCreateUserInput struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	FirstName string `json:"firstName" validate:"required,no_xss"`
	LastName  string `json:"lastName" validate:"required,no_xss"`
	Role      string `json:"role" validate:"required,oneof=admin content_manager content_producer"`
}

// AdminUpdateUserInput dữ liệu cập nhật user (chỉ admin)
type AdminUpdateUserInput struct {
	FirstName string `json:"firstName,omitempty" validate:"omitempty,no_xss"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,no_xss"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin content_manager content_producer"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ForgotPasswordInput yêu cầu đặt lại mật khẩu
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput xác nhận đặt lại mật khẩu với token
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required,len=64,hexadecimal"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
