// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "church_connect/internal/api/report/handler"
	apirouter "church_connect/internal/api/router"
)

// Register đăng ký tất cả route report lên v1. Toàn bộ yêu cầu xác thực quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statsHandler, err := reporthdl.NewStatsHandler()
	if err != nil {
		return fmt.Errorf("failed to create stats handler: %w", err)
	}

	r.AdminGroup(v1).Get("/stats", statsHandler.HandleGetStats)
	return nil
}
