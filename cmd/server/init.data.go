package main

import (
	"context"
	"errors"

	authdto "church_connect/internal/api/auth/dto"
	authsvc "church_connect/internal/api/auth/service"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Nếu được cấu hình, tạo quản trị viên đầu tiên khi chưa có tài khoản nào.
func InitDefaultData() {
	log := logger.WithModule("bootstrap")
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminBootstrapUsername == "" || cfg.AdminBootstrapEmail == "" || cfg.AdminBootstrapPassword == "" {
		log.Info("Admin bootstrap not configured, skipping default admin creation")
		return
	}

	adminService, err := authsvc.NewAdminService()
	if err != nil {
		log.Fatalf("Failed to initialize admin service: %v", err)
	}

	_, err = adminService.Register(context.Background(), &authdto.AdminRegisterInput{
		Username: cfg.AdminBootstrapUsername,
		Email:    cfg.AdminBootstrapEmail,
		Password: cfg.AdminBootstrapPassword,
	})
	if err != nil {
		if errors.Is(err, common.ErrAdminExists) {
			log.Info("Default admin already exists, skipping")
			return
		}
		log.Warnf("Failed to create default admin: %v", err)
		return
	}

	log.Infof("Default admin %s created successfully", cfg.AdminBootstrapUsername)
}
