// Package models - JwtClaims thuộc domain auth.
package models

import "github.com/golang-jwt/jwt/v5"

// JwtClaims chứa data được mã hóa trong JWT token.
// UID là hex string của user ObjectID, Role là vai trò tại thời điểm phát hành.
type JwtClaims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
