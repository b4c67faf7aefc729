// Package models - các model tương tác với khách truy cập (tin nhắn liên hệ, đăng ký bản tin).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của tin nhắn liên hệ
const (
	MessageStatusNew     = "new"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactMessage định nghĩa mô hình tin nhắn liên hệ từ khách truy cập.
// Status bắt đầu là "new" và được quản trị viên cập nhật khi xử lý.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
