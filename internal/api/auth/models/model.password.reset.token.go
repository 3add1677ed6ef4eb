// Package models - PasswordResetToken thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordResetToken lưu mã đặt lại mật khẩu của người dùng.
// Mỗi user chỉ có một token hiệu lực tại một thời điểm: yêu cầu mới thay thế
// token cũ (upsert theo userId). Token là chuỗi hex 64 ký tự (256 bit ngẫu nhiên),
// hết hạn sau 1 giờ và chỉ dùng được một lần.
type PasswordResetToken struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"unique"`
	Token     string             `json:"-" bson:"token" index:"unique"`
	ExpiresAt int64              `json:"expiresAt" bson:"expiresAt"`
	Used      bool               `json:"used" bson:"used"`
	UsedAt    *int64             `json:"usedAt,omitempty" bson:"usedAt,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
