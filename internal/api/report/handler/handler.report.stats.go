// Package reporthdl xử lý các request báo cáo số liệu.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	reportsvc "church_connect/internal/api/report/service"
	"church_connect/internal/common"
)

// StatsHandler xử lý request lấy số liệu tổng hợp
type StatsHandler struct {
	statsService *reportsvc.StatsService
}

// NewStatsHandler tạo instance mới của StatsHandler
func NewStatsHandler() (*StatsHandler, error) {
	statsService, err := reportsvc.NewStatsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %v", err)
	}
	return &StatsHandler{
		statsService: statsService,
	}, nil
}

// HandleGetStats trả về số liệu tổng hợp cho trang quản trị
func (h *StatsHandler) HandleGetStats(c fiber.Ctx) error {
	stats, err := h.statsService.GetSiteStats(c.Context())
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}
	return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, stats)
}
