// Package models - các model nội dung công khai của trang (event, sermon, gallery, settings).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event định nghĩa mô hình sự kiện của hội thánh.
// Category phân loại sự kiện (upcoming, regular, special), mặc định là "upcoming".
type Event struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Category    string             `json:"category" bson:"category"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// EventCategoryDefault là category mặc định khi tạo sự kiện không chỉ định
const EventCategoryDefault = "upcoming"
