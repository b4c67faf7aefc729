package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings định nghĩa cấu hình trang (singleton document).
// Trong collection chỉ tồn tại một document duy nhất với Type = "site".
type SiteSettings struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type         string             `json:"type" bson:"type" index:"unique"`
	MusicURL     string             `json:"musicUrl" bson:"musicUrl"`
	MusicEnabled bool               `json:"musicEnabled" bson:"musicEnabled"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// SiteSettingsType là giá trị Type của document cấu hình duy nhất
const SiteSettingsType = "site"
