// Package database - Index cho các collection của trang web (unique, sort).
package database

import (
	"context"
	"strings"

	"church_connect/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSiteIndexes tạo các index cho tất cả collection của hệ thống.
// Gọi một lần khi khởi động server, sau khi đã kết nối MongoDB.
func CreateSiteIndexes(ctx context.Context, db *mongo.Database) error {
	// admins: username unique — không cho trùng tên đăng nhập
	admins := db.Collection(global.MongoDB_ColNames.Admins)
	if _, err := admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("admin_username_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// admins: email unique
	if _, err := admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("admin_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// events: (date desc) — danh sách sự kiện sắp xếp theo ngày
	events := db.Collection(global.MongoDB_ColNames.Events)
	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("event_date_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// events: (category, date desc) — lọc theo category
	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "date", Value: -1},
		},
		Options: options.Index().SetName("event_category_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sermons: (createdAt desc) — danh sách bài giảng mới nhất trước
	sermons := db.Collection(global.MongoDB_ColNames.Sermons)
	if _, err := sermons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("sermon_created_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sermons: (series) sparse — lọc theo series
	if _, err := sermons.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "series", Value: 1}},
		Options: options.Index().SetName("sermon_series").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// gallery_images: (uploadedAt desc) — thư viện ảnh mới nhất trước
	gallery := db.Collection(global.MongoDB_ColNames.GalleryImages)
	if _, err := gallery.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uploadedAt", Value: -1}},
		Options: options.Index().SetName("gallery_uploaded_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// contact_messages: (status, createdAt desc) — lọc tin nhắn theo trạng thái
	messages := db.Collection(global.MongoDB_ColNames.ContactMessages)
	if _, err := messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("message_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// subscribers: email unique — không cho đăng ký trùng
	subscribers := db.Collection(global.MongoDB_ColNames.Subscribers)
	if _, err := subscribers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("subscriber_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// subscribers: (active, subscribedAt desc) — danh sách đang hoạt động
	if _, err := subscribers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "active", Value: 1},
			{Key: "subscribedAt", Value: -1},
		},
		Options: options.Index().SetName("subscriber_active_subscribed"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// site_settings: type unique — đảm bảo document cấu hình là singleton
	settings := db.Collection(global.MongoDB_ColNames.SiteSettings)
	if _, err := settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "type", Value: 1}},
		Options: options.Index().SetName("settings_type_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
