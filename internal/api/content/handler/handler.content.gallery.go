package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	contentsvc "church_connect/internal/api/content/service"
)

// GalleryHandler xử lý các request về thư viện ảnh
type GalleryHandler struct {
	*basehdl.BaseHandler[contentmodels.GalleryImage, contentdto.GalleryImageCreateInput, contentdto.GalleryImageCreateInput]
	galleryService *contentsvc.GalleryService
}

// NewGalleryHandler tạo instance mới của GalleryHandler
func NewGalleryHandler() (*GalleryHandler, error) {
	galleryService, err := contentsvc.NewGalleryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.GalleryImage, contentdto.GalleryImageCreateInput, contentdto.GalleryImageCreateInput](galleryService)
	return &GalleryHandler{
		BaseHandler:    baseHandler,
		galleryService: galleryService,
	}, nil
}

// HandleCreate thêm ảnh mới vào thư viện
func (h *GalleryHandler) HandleCreate(c fiber.Ctx) error {
	var input contentdto.GalleryImageCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	image, err := h.galleryService.Create(c.Context(), &input)
	return h.HandleCreatedResponse(c, image, err)
}

// HandleList lấy danh sách ảnh trong thư viện, hỗ trợ lọc theo query "category"
func (h *GalleryHandler) HandleList(c fiber.Ctx) error {
	category := c.Query("category")
	images, err := h.galleryService.List(c.Context(), category)
	return h.HandleResponse(c, images, err)
}
