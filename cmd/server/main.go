package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"church_connect/internal/database"
	"church_connect/internal/global"
	"church_connect/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()

	// Dừng server khi nhận tín hiệu hệ điều hành
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			log.WithError(err).Error("Error closing MongoDB connection")
		}
	}()

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    cfg.TLSCertFile,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
