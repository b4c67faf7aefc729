// Package models - model quản trị viên (Admin) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin định nghĩa mô hình quản trị viên.
// Password được lưu dưới dạng bcrypt hash và không bao giờ trả về cho client.
// Token chứa JWT mới nhất được cấp khi đăng nhập.
type Admin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username" index:"unique"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Token     string             `json:"-" bson:"token,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
