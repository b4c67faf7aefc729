package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	contentsvc "church_connect/internal/api/content/service"
)

// SettingsHandler xử lý các request về cấu hình trang
type SettingsHandler struct {
	*basehdl.BaseHandler[contentmodels.SiteSettings, contentdto.SiteSettingsUpdateInput, contentdto.SiteSettingsUpdateInput]
	settingsService *contentsvc.SettingsService
}

// NewSettingsHandler tạo instance mới của SettingsHandler
func NewSettingsHandler() (*SettingsHandler, error) {
	settingsService, err := contentsvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.SiteSettings, contentdto.SiteSettingsUpdateInput, contentdto.SiteSettingsUpdateInput](settingsService)
	return &SettingsHandler{
		BaseHandler:     baseHandler,
		settingsService: settingsService,
	}, nil
}

// HandleGet lấy cấu hình trang hiện tại (trả về mặc định nếu chưa cấu hình)
func (h *SettingsHandler) HandleGet(c fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	return h.HandleResponse(c, settings, err)
}

// HandleUpdate tạo hoặc cập nhật cấu hình trang
func (h *SettingsHandler) HandleUpdate(c fiber.Ctx) error {
	var input contentdto.SiteSettingsUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	settings, err := h.settingsService.Update(c.Context(), &input)
	return h.HandleResponse(c, settings, err)
}

// HandleGetMusic trả về URL nhạc nền cho trang công khai
func (h *SettingsHandler) HandleGetMusic(c fiber.Ctx) error {
	result, err := h.settingsService.GetMusic(c.Context())
	return h.HandleResponse(c, result, err)
}
