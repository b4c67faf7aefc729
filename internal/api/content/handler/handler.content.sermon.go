package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	contentsvc "church_connect/internal/api/content/service"
)

// SermonHandler xử lý các request về bài giảng
type SermonHandler struct {
	*basehdl.BaseHandler[contentmodels.Sermon, contentdto.SermonCreateInput, contentdto.SermonUpdateInput]
	sermonService *contentsvc.SermonService
}

// NewSermonHandler tạo instance mới của SermonHandler
func NewSermonHandler() (*SermonHandler, error) {
	sermonService, err := contentsvc.NewSermonService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sermon service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.Sermon, contentdto.SermonCreateInput, contentdto.SermonUpdateInput](sermonService)
	return &SermonHandler{
		BaseHandler:   baseHandler,
		sermonService: sermonService,
	}, nil
}

// HandleCreate tạo bài giảng mới
func (h *SermonHandler) HandleCreate(c fiber.Ctx) error {
	var input contentdto.SermonCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	sermon, err := h.sermonService.Create(c.Context(), &input)
	return h.HandleCreatedResponse(c, sermon, err)
}

// HandleList lấy danh sách bài giảng, hỗ trợ lọc theo query "series"
func (h *SermonHandler) HandleList(c fiber.Ctx) error {
	series := c.Query("series")
	sermons, err := h.sermonService.List(c.Context(), series)
	return h.HandleResponse(c, sermons, err)
}

// HandleGetById lấy chi tiết một bài giảng và ghi nhận thêm một lượt xem
func (h *SermonHandler) HandleGetById(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	sermon, err := h.sermonService.GetAndCountView(c.Context(), id)
	return h.HandleResponse(c, sermon, err)
}
