// Package engagementhdl xử lý các request của domain engagement.
package engagementhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	engagementdto "church_connect/internal/api/engagement/dto"
	engagementmodels "church_connect/internal/api/engagement/models"
	engagementsvc "church_connect/internal/api/engagement/service"
)

// MessageHandler xử lý các request về tin nhắn liên hệ
type MessageHandler struct {
	*basehdl.BaseHandler[engagementmodels.ContactMessage, engagementdto.ContactMessageCreateInput, engagementdto.ContactMessageStatusInput]
	messageService *engagementsvc.MessageService
}

// NewMessageHandler tạo instance mới của MessageHandler
func NewMessageHandler() (*MessageHandler, error) {
	messageService, err := engagementsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[engagementmodels.ContactMessage, engagementdto.ContactMessageCreateInput, engagementdto.ContactMessageStatusInput](messageService)
	return &MessageHandler{
		BaseHandler:    baseHandler,
		messageService: messageService,
	}, nil
}

// HandleCreate nhận tin nhắn liên hệ từ khách truy cập
func (h *MessageHandler) HandleCreate(c fiber.Ctx) error {
	var input engagementdto.ContactMessageCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	message, err := h.messageService.Create(c.Context(), &input)
	return h.HandleCreatedResponse(c, message, err)
}

// HandleList lấy danh sách tin nhắn liên hệ, hỗ trợ lọc theo query "status"
func (h *MessageHandler) HandleList(c fiber.Ctx) error {
	status := c.Query("status")
	messages, err := h.messageService.List(c.Context(), status)
	return h.HandleResponse(c, messages, err)
}

// HandleUpdateStatus cập nhật trạng thái một tin nhắn
func (h *MessageHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	var input engagementdto.ContactMessageStatusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	message, err := h.messageService.UpdateStatus(c.Context(), id, input.Status)
	return h.HandleResponse(c, message, err)
}
