// Package router đăng ký các route thuộc domain auth: Admin, System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "church_connect/internal/api/auth/handler"
	basehdl "church_connect/internal/api/base/handler"
	apirouter "church_connect/internal/api/router"
)

// Register đăng ký tất cả route auth (admin, system) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerAdminRoutes(v1, r); err != nil {
		return err
	}
	registerSystemRoutes(v1)
	return nil
}

func registerAdminRoutes(router fiber.Router, r *apirouter.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}

	// Route công khai phải đăng ký trước khi tạo group /admin có middleware
	router.Post("/admin/register", adminHandler.HandleRegister)
	router.Post("/admin/login", adminHandler.HandleLogin)

	r.AdminGroup(router).Get("/profile", adminHandler.HandleGetProfile)
	return nil
}

func registerSystemRoutes(router fiber.Router) {
	systemHandler := basehdl.NewSystemHandler()
	// Health check được bỏ qua ở recover middleware toàn cục nên tự bọc SafeHandler
	router.Get("/health", basehdl.SafeHandler(systemHandler.HandleHealth))
}
