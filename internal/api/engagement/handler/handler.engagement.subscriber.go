package engagementhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	engagementdto "church_connect/internal/api/engagement/dto"
	engagementmodels "church_connect/internal/api/engagement/models"
	engagementsvc "church_connect/internal/api/engagement/service"
	"church_connect/internal/common"
)

// SubscriberHandler xử lý các request về đăng ký bản tin
type SubscriberHandler struct {
	*basehdl.BaseHandler[engagementmodels.Subscriber, engagementdto.SubscribeInput, engagementdto.SubscribeInput]
	subscriberService *engagementsvc.SubscriberService
}

// NewSubscriberHandler tạo instance mới của SubscriberHandler
func NewSubscriberHandler() (*SubscriberHandler, error) {
	subscriberService, err := engagementsvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[engagementmodels.Subscriber, engagementdto.SubscribeInput, engagementdto.SubscribeInput](subscriberService)
	return &SubscriberHandler{
		BaseHandler:       baseHandler,
		subscriberService: subscriberService,
	}, nil
}

// HandleSubscribe đăng ký email nhận bản tin.
// Trả về 201 khi tạo đăng ký mới, 200 khi kích hoạt lại đăng ký cũ.
func (h *SubscriberHandler) HandleSubscribe(c fiber.Ctx) error {
	var input engagementdto.SubscribeInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.subscriberService.Subscribe(c.Context(), &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	if result.Renewed {
		return basehdl.HandleSuccessResponse(c, common.StatusOK, "Đã kích hoạt lại đăng ký bản tin", result)
	}
	return basehdl.HandleSuccessResponse(c, common.StatusCreated, "Đăng ký bản tin thành công", result)
}

// HandleList lấy danh sách người đăng ký đang hoạt động
func (h *SubscriberHandler) HandleList(c fiber.Ctx) error {
	subscribers, err := h.subscriberService.ListActive(c.Context())
	return h.HandleResponse(c, subscribers, err)
}

// HandleUnsubscribe hủy đăng ký bản tin của một người đăng ký
func (h *SubscriberHandler) HandleUnsubscribe(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	subscriber, err := h.subscriberService.Unsubscribe(c.Context(), id)
	return h.HandleResponse(c, subscriber, err)
}
