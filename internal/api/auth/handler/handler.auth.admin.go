// Package authhdl xử lý các request xác thực quản trị viên.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "church_connect/internal/api/auth/dto"
	models "church_connect/internal/api/auth/models"
	authsvc "church_connect/internal/api/auth/service"
	basehdl "church_connect/internal/api/base/handler"
	"church_connect/internal/common"
	"church_connect/internal/utility"
)

// AdminHandler xử lý các request đăng ký, đăng nhập và profile của quản trị viên
type AdminHandler struct {
	*basehdl.BaseHandler[models.Admin, authdto.AdminRegisterInput, authdto.AdminRegisterInput]
	adminService *authsvc.AdminService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Admin, authdto.AdminRegisterInput, authdto.AdminRegisterInput](adminService)
	return &AdminHandler{
		BaseHandler:  baseHandler,
		adminService: adminService,
	}, nil
}

// HandleRegister xử lý đăng ký quản trị viên mới
func (h *AdminHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.AdminRegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	admin, err := h.adminService.Register(c.Context(), &input)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	return h.HandleCreatedResponse(c, authdto.AdminInfo{
		ID:       utility.ObjectID2String(admin.ID),
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}, nil)
}

// HandleLogin xử lý đăng nhập quản trị viên
func (h *AdminHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.AdminLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.adminService.Login(c.Context(), &input)
	return h.HandleResponse(c, result, err)
}

// HandleGetProfile lấy thông tin profile của quản trị viên đang đăng nhập
func (h *AdminHandler) HandleGetProfile(c fiber.Ctx) error {
	adminID, ok := c.Locals("admin_id").(string)
	if !ok || adminID == "" {
		return basehdl.HandleErrorResponse(c, common.ErrTokenMissing)
	}

	objID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return basehdl.HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	admin, err := h.adminService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	return h.HandleResponse(c, authdto.AdminInfo{
		ID:       utility.ObjectID2String(admin.ID),
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}, nil)
}
