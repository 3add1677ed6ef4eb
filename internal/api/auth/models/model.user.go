// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecojourney/internal/common"
)

// User định nghĩa mô hình người dùng.
// Password luôn là bcrypt hash, không bao giờ trả về qua JSON.
// LoginAttempts đếm số lần đăng nhập sai liên tiếp; khi đạt ngưỡng, tài khoản
// bị khóa tạm thời đến thời điểm LockedUntil (UnixMilli).
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username      string             `json:"username" bson:"username" index:"unique"`
	Email         string             `json:"email" bson:"email" index:"unique"`
	Password      string             `json:"-" bson:"password"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	Role          common.Role        `json:"role" bson:"role" index:"single" default:"content_producer"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Organization  string             `json:"organization,omitempty" bson:"organization,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive      bool               `json:"isActive" bson:"isActive" default:"true"`
	LoginAttempts int                `json:"-" bson:"loginAttempts"`
	IsLocked      bool               `json:"-" bson:"isLocked"`
	LockedUntil   int64              `json:"-" bson:"lockedUntil,omitempty"`
	LastLoginAt   int64              `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	LastLoginIP   string             `json:"-" bson:"lastLoginIp,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// FullName trả về tên hiển thị của người dùng
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
