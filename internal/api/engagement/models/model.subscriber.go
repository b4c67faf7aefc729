package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber định nghĩa mô hình người đăng ký nhận bản tin.
// Active đánh dấu đăng ký còn hiệu lực, đăng ký lại sẽ kích hoạt lại thay vì tạo mới.
type Subscriber struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email" index:"unique"`
	Active       bool               `json:"active" bson:"active"`
	SubscribedAt int64              `json:"subscribedAt" bson:"subscribedAt"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
