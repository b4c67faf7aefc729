package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"church_connect/internal/common"
	"church_connect/internal/global"
)

// SystemHandler xử lý các request hệ thống (health check)
type SystemHandler struct{}

// NewSystemHandler tạo mới một SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng hoạt động của hệ thống.
// Ping MongoDB với timeout ngắn, nếu không thành công trả về 503.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	if global.MongoDB_Session == nil {
		dbStatus = "disconnected"
	} else if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		dbStatus = "disconnected"
	}

	data := fiber.Map{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().UnixMilli(),
	}

	if dbStatus != "connected" {
		data["status"] = "degraded"
		return JSONResponse(c, common.StatusServiceUnavailable, common.ErrCodeDatabaseConnection.Code, "Hệ thống đang gặp sự cố", data)
	}

	return JSONResponse(c, common.StatusOK, "SUCCESS", "Hệ thống hoạt động bình thường", data)
}
