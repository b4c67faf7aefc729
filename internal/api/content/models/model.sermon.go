package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sermon định nghĩa mô hình bài giảng.
// Views đếm số lượt xem, được tăng nguyên tử mỗi lần client xem chi tiết bài giảng.
type Sermon struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Speaker     string             `json:"speaker" bson:"speaker"`
	Date        string             `json:"date" bson:"date"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Series      string             `json:"series,omitempty" bson:"series,omitempty"`
	VideoURL    string             `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	AudioURL    string             `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
	Views       int64              `json:"views" bson:"views"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
