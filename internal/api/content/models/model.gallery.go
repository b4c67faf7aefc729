package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryImage định nghĩa mô hình hình ảnh trong thư viện ảnh.
// UploadedAt là thời điểm tải lên (unix millisecond), dùng để sắp xếp mới nhất trước.
type GalleryImage struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	UploadedAt  int64              `json:"uploadedAt" bson:"uploadedAt"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// GalleryCategoryDefault là category mặc định khi tải ảnh không chỉ định
const GalleryCategoryDefault = "general"
