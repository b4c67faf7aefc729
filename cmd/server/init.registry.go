package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"church_connect/config"
	"church_connect/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Admins,
		global.MongoDB_ColNames.Events,
		global.MongoDB_ColNames.Sermons,
		global.MongoDB_ColNames.GalleryImages,
		global.MongoDB_ColNames.ContactMessages,
		global.MongoDB_ColNames.Subscribers,
		global.MongoDB_ColNames.SiteSettings,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
