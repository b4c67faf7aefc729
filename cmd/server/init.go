package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"church_connect/config"
	"church_connect/internal/database"
	"church_connect/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Admins = "admins"
	global.MongoDB_ColNames.Events = "events"
	global.MongoDB_ColNames.Sermons = "sermons"
	global.MongoDB_ColNames.GalleryImages = "gallery_images"
	global.MongoDB_ColNames.ContactMessages = "contact_messages"
	global.MongoDB_ColNames.Subscribers = "subscribers"
	global.MongoDB_ColNames.SiteSettings = "site_settings"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	if err := database.CreateSiteIndexes(context.TODO(), global.MongoDB_Session.Database(dbName)); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
