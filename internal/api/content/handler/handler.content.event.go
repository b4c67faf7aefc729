// Package contenthdl xử lý các request của domain content.
package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "church_connect/internal/api/base/handler"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	contentsvc "church_connect/internal/api/content/service"
)

// EventHandler xử lý các request về sự kiện
type EventHandler struct {
	*basehdl.BaseHandler[contentmodels.Event, contentdto.EventCreateInput, contentdto.EventUpdateInput]
	eventService *contentsvc.EventService
}

// NewEventHandler tạo instance mới của EventHandler
func NewEventHandler() (*EventHandler, error) {
	eventService, err := contentsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[contentmodels.Event, contentdto.EventCreateInput, contentdto.EventUpdateInput](eventService)
	return &EventHandler{
		BaseHandler:  baseHandler,
		eventService: eventService,
	}, nil
}

// HandleCreate tạo sự kiện mới
func (h *EventHandler) HandleCreate(c fiber.Ctx) error {
	var input contentdto.EventCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	event, err := h.eventService.Create(c.Context(), &input)
	return h.HandleCreatedResponse(c, event, err)
}

// HandleList lấy danh sách sự kiện, hỗ trợ lọc theo query "category"
func (h *EventHandler) HandleList(c fiber.Ctx) error {
	category := c.Query("category")
	events, err := h.eventService.List(c.Context(), category)
	return h.HandleResponse(c, events, err)
}
